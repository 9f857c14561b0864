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

package paramfilter

import (
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/engine"
	"github.com/rulego/paramfilter/utils/maps"
)

// Configuration is the untyped form of the filter rules, as found in rule
// chain or file configuration. Lists accept a string slice or a
// comma-separated string.
type Configuration struct {
	Required []string
	Accepted []string
	Excluded []string
	Debug    bool
}

// ParamFilter is a reusable filter holding its rules.
//
// Apply may be called concurrently. The setters modify the rules in place:
// callers changing a shared filter while others apply it must serialize the
// two themselves.
type ParamFilter struct {
	config types.FilterConfig
}

// New creates a filter. Without options every list is empty and debug is
// off: any input is admitted, with no field.
func New(opts ...types.FilterOption) *ParamFilter {
	return &ParamFilter{config: types.NewFilterConfig(opts...)}
}

// FromConfiguration creates a filter from an untyped configuration. A nil or
// malformed configuration gives a filter with empty rules.
func FromConfiguration(configuration types.Configuration) *ParamFilter {
	var c Configuration
	if configuration != nil {
		if err := maps.DecodeWeak(configuration, &c); err != nil {
			return New()
		}
	}
	return New(
		types.WithRequired(c.Required...),
		types.WithAccepted(c.Accepted...),
		types.WithExcluded(c.Excluded...),
		types.WithDebug(c.Debug),
	)
}

// SetRequired replaces the required fields. No names clears the list.
func (p *ParamFilter) SetRequired(names ...string) *ParamFilter {
	p.config.Required = types.NewFieldSet(names...)
	return p
}

// SetAccepted replaces the accepted fields. No names clears the list.
func (p *ParamFilter) SetAccepted(names ...string) *ParamFilter {
	p.config.Accepted = types.NewFieldSet(names...)
	return p
}

// SetExcluded replaces the excluded fields. No names clears the list.
func (p *ParamFilter) SetExcluded(names ...string) *ParamFilter {
	p.config.Excluded = types.NewFieldSet(names...)
	return p
}

// AcceptAll accepts every field that is not excluded.
func (p *ParamFilter) AcceptAll() *ParamFilter {
	return p.SetAccepted(types.Wildcard)
}

// AcceptNone accepts no field besides the required ones.
func (p *ParamFilter) AcceptNone() *ParamFilter {
	return p.SetAccepted()
}

// SetDebug turns the excluded and unrecognized field warnings on or off.
func (p *ParamFilter) SetDebug(debug bool) *ParamFilter {
	p.config.Debug = debug
	return p
}

// Config returns a copy of the current rules.
func (p *ParamFilter) Config() types.FilterConfig {
	return p.config.Copy()
}

// Apply filters input with the current rules. See Filter for the results.
func (p *ParamFilter) Apply(input interface{}) (types.Record, string, error) {
	rec, notes := engine.Normalize(input)
	return engine.Filter(rec, notes, p.config)
}

// Matcher compiles the current rules. Later setter calls do not affect it.
func (p *ParamFilter) Matcher() Matcher {
	return engine.Compile(p.config.Required, p.config.Accepted, p.config.Excluded)
}
