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

// Package paramfilter admits or rejects the fields of loosely structured
// argument bags by name. It never looks at values: a field survives when it
// is required or accepted and not excluded, and the filtering fails when a
// required field is absent.
//
// # Inputs
//
// Any value can be filtered. Maps with string keys are used as they are.
// Lists are read as alternating keys and values; an unpaired last key becomes
// a flag with value 1, and a list whose first element is a map is filtered as
// that map alone. A lone scalar is stored under the key "_". Coercions are
// reported in the status even when filtering succeeds.
//
// # Usage
//
// One-shot filtering, rules passed on every call:
//
//	out, status, err := paramfilter.Filter(args, []string{"name", "email"},
//		types.WithExcluded("ssn"),
//	)
//
// Reusable filter, rules stored once:
//
//	f := paramfilter.New().
//		SetRequired("id").
//		AcceptAll().
//		SetExcluded("password")
//	out, status, err := f.Apply(args)
//
// Precompiled matcher for hot paths, keyed input only and no status:
//
//	match := paramfilter.NewMatcher([]string{"id"}, []string{"*"}, []string{"password"})
//	if out := match(record); out != nil {
//		...
//	}
//
// The input is never modified and every call returns a newly allocated record.
package paramfilter

import (
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/engine"
)

// Matcher filters an already keyed record with fixed rules and returns nil
// when a required field is missing.
type Matcher = engine.Matcher

// Filter normalizes input and filters it. accepted, excluded and debug are
// given as options and default to empty and off.
//
// On success it returns the admitted fields and either types.Admitted or the
// newline separated notices and warnings. On failure the record is nil, the
// status is the error message and err is a *types.FilterError.
func Filter(input interface{}, required []string, opts ...types.FilterOption) (types.Record, string, error) {
	cfg := types.NewFilterConfig(types.WithRequired(required...))
	for _, opt := range opts {
		opt(&cfg)
	}
	rec, notes := engine.Normalize(input)
	return engine.Filter(rec, notes, cfg)
}

// NewMatcher compiles the rules into a Matcher.
func NewMatcher(required, accepted, excluded []string) Matcher {
	return engine.Compile(required, accepted, excluded)
}
