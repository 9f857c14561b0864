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

// FilterConfig 过滤规则配置
// FilterConfig holds the admission rules of a filtering operation.
type FilterConfig struct {
	// Required fields must all be present, otherwise the filtering fails.
	Required FieldSet
	// Accepted fields are admitted when present. Wildcard admits every field
	// that is not excluded.
	Accepted FieldSet
	// Excluded fields are never admitted unless they are also required.
	Excluded FieldSet
	// Debug appends warnings about excluded and unrecognized fields to the status.
	Debug bool
}

// FilterOption 修改FilterConfig的选项函数
// FilterOption modifies a FilterConfig.
type FilterOption func(*FilterConfig)

// NewFilterConfig 创建空的FilterConfig并应用选项
// NewFilterConfig creates an empty FilterConfig and applies the options.
func NewFilterConfig(opts ...FilterOption) FilterConfig {
	c := FilterConfig{
		Required: FieldSet{},
		Accepted: FieldSet{},
		Excluded: FieldSet{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Copy returns a FilterConfig that shares no slices with c.
func (c FilterConfig) Copy() FilterConfig {
	return FilterConfig{
		Required: c.Required.Copy(),
		Accepted: c.Accepted.Copy(),
		Excluded: c.Excluded.Copy(),
		Debug:    c.Debug,
	}
}

// WithRequired sets the required fields.
func WithRequired(names ...string) FilterOption {
	return func(c *FilterConfig) {
		c.Required = NewFieldSet(names...)
	}
}

// WithAccepted sets the accepted fields.
func WithAccepted(names ...string) FilterOption {
	return func(c *FilterConfig) {
		c.Accepted = NewFieldSet(names...)
	}
}

// WithAcceptAll accepts every field that is not excluded.
func WithAcceptAll() FilterOption {
	return WithAccepted(Wildcard)
}

// WithExcluded sets the excluded fields.
func WithExcluded(names ...string) FilterOption {
	return func(c *FilterConfig) {
		c.Excluded = NewFieldSet(names...)
	}
}

// WithDebug turns the debug warnings on or off.
func WithDebug(debug bool) FilterOption {
	return func(c *FilterConfig) {
		c.Debug = debug
	}
}
