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

// Package engine implements the field admission algorithm of paramfilter:
// input normalization, the required/accepted/excluded decision and the
// precompiled matchers built on the same rules.
package engine

import (
	"strings"

	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/utils/str"
)

// Filter applies cfg to rec and returns the admitted fields with the status.
// notes are the normalization notices, reported before any debug warning.
//
// rec is consumed: admitted, excluded and unrecognized fields are removed
// from it. Callers that need to keep their record must pass a copy, as
// Normalize already does.
//
// On failure the returned record is nil, the status is the error message and
// the error is a *types.FilterError.
func Filter(rec types.Record, notes []string, cfg types.FilterConfig) (types.Record, string, error) {
	required := cfg.Required
	// Cheap necessary condition, it never admits a record by itself.
	if len(required) > 0 && len(rec) < len(required) {
		return fail(types.ErrInsufficientFields, required)
	}

	out := make(types.Record, len(required))
	var missing []string
	for _, name := range required {
		if v, ok := rec[name]; ok {
			out[name] = v
			delete(rec, name)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fail(types.ErrMissingRequiredFields, missing)
	}
	if len(rec) == 0 || len(cfg.Accepted) == 0 {
		return out, status(notes, nil), nil
	}

	var excluded []string
	for _, name := range cfg.Excluded {
		if _, ok := rec[name]; ok {
			delete(rec, name)
			excluded = append(excluded, name)
		}
	}

	if cfg.Accepted.HasWildcard() {
		for k, v := range rec {
			out[k] = v
			delete(rec, k)
		}
	} else {
		for _, name := range cfg.Accepted {
			if v, ok := rec[name]; ok {
				out[name] = v
				delete(rec, name)
			}
		}
	}

	var warnings []string
	if cfg.Debug {
		if len(excluded) > 0 {
			warnings = append(warnings, "Ignoring excluded arguments: "+str.QuoteJoin(excluded))
		}
		if len(rec) > 0 {
			warnings = append(warnings, "Ignoring unrecognized arguments: "+str.QuoteJoin(rec.Keys()))
		}
	}
	return out, status(notes, warnings), nil
}

func fail(kind error, fields []string) (types.Record, string, error) {
	names := make([]string, len(fields))
	copy(names, fields)
	err := &types.FilterError{Kind: kind, Fields: names}
	return nil, err.Error(), err
}

// status joins notes and warnings, or returns types.Admitted when both are empty.
func status(notes, warnings []string) string {
	if len(notes)+len(warnings) == 0 {
		return types.Admitted
	}
	msgs := make([]string, 0, len(notes)+len(warnings))
	msgs = append(msgs, notes...)
	msgs = append(msgs, warnings...)
	return strings.Join(msgs, "\n")
}
