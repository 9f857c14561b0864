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

package engine

import "github.com/rulego/paramfilter/api/types"

// Matcher filters an already keyed record with rules fixed at compile time.
// It returns nil when the record lacks a required field. The record passed in
// is never modified.
type Matcher func(rec types.Record) types.Record

// Compile builds a Matcher for the given rules. The strategy is chosen here
// from the shape of accepted, so a call never looks at the configuration.
func Compile(required, accepted, excluded []string) Matcher {
	req := types.NewFieldSet(required...)
	acc := types.NewFieldSet(accepted...)
	exc := types.NewFieldSet(excluded...)

	switch {
	case len(acc) == 0:
		return requiredOnly(req)
	case acc.HasWildcard():
		skip := make(map[string]struct{}, len(req)+len(exc))
		for _, name := range req {
			skip[name] = struct{}{}
		}
		for _, name := range exc {
			skip[name] = struct{}{}
		}
		return acceptAll(req, skip)
	default:
		var listed []string
		for _, name := range acc {
			if !req.Contains(name) && !exc.Contains(name) {
				listed = append(listed, name)
			}
		}
		return acceptListed(req, listed)
	}
}

// extractRequired copies the required fields of rec into a new record.
// ok is false when any of them is missing.
func extractRequired(rec types.Record, required types.FieldSet, extra int) (types.Record, bool) {
	if len(required) > 0 && len(rec) < len(required) {
		return nil, false
	}
	out := make(types.Record, len(required)+extra)
	for _, name := range required {
		v, ok := rec[name]
		if !ok {
			return nil, false
		}
		out[name] = v
	}
	return out, true
}

func requiredOnly(required types.FieldSet) Matcher {
	return func(rec types.Record) types.Record {
		out, ok := extractRequired(rec, required, 0)
		if !ok {
			return nil
		}
		return out
	}
}

func acceptAll(required types.FieldSet, skip map[string]struct{}) Matcher {
	return func(rec types.Record) types.Record {
		out, ok := extractRequired(rec, required, len(rec)-len(required))
		if !ok {
			return nil
		}
		for k, v := range rec {
			if _, found := skip[k]; !found {
				out[k] = v
			}
		}
		return out
	}
}

func acceptListed(required types.FieldSet, listed []string) Matcher {
	return func(rec types.Record) types.Record {
		out, ok := extractRequired(rec, required, len(listed))
		if !ok {
			return nil
		}
		for _, name := range listed {
			if v, found := rec[name]; found {
				out[name] = v
			}
		}
		return out
	}
}
