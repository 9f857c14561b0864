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

import (
	"log"
	"os"
)

// Logger 日志记录接口，供规则节点和命令行工具使用，过滤核心不记录日志
// Logger is the logging contract used by the rule nodes and the command line tool.
// The filtering core never logs.
type Logger interface {
	Printf(format string, v ...interface{})
}

var _ Logger = &log.Logger{}

// DefaultLogger returns a `Logger` implementation writing to stdout.
func DefaultLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}

// NewLogger 返回custom，custom为nil(包括nil *log.Logger)时返回默认日志记录器
// NewLogger returns custom, or the default logger when custom is nil or a nil *log.Logger.
func NewLogger(custom Logger) Logger {
	switch l := custom.(type) {
	case nil:
		return DefaultLogger()
	case *log.Logger:
		if l == nil {
			return DefaultLogger()
		}
	}
	return custom
}
