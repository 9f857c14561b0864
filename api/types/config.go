/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// Config 规则节点共享的配置
// Config is the configuration shared by rule nodes.
type Config struct {
	// Logger 日志记录接口，默认：DefaultLogger()
	// Logger is the logging interface, defaulting to `DefaultLogger()`.
	Logger Logger
}

// Option 修改Config的选项函数
// Option modifies a Config.
type Option func(*Config) error

// NewConfig 使用默认值创建Config，并应用提供的选项
// NewConfig creates a new Config with default values and applies the provided options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		Logger: DefaultLogger(),
	}
	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}

// WithLogger 设置日志记录器
// WithLogger is an option that sets the logger of the Config.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = NewLogger(logger)
		return nil
	}
}
