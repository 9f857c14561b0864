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

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rulego/paramfilter/api/types"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestCompile(t *testing.T) {
	input := types.Record{"name": "BVA", "email": "me@here.com", "ssn": "111-22-3333"}

	t.Run("RequiredOnly", func(t *testing.T) {
		match := Compile([]string{"name", "email"}, nil, []string{"ssn"})
		assert.Equal(t, types.Record{"name": "BVA", "email": "me@here.com"}, match(input))
		assert.Nil(t, match(types.Record{"name": "BVA", "ssn": "x"}))
		assert.Nil(t, match(types.Record{}))
	})

	t.Run("Wildcard", func(t *testing.T) {
		match := Compile([]string{"name"}, []string{types.Wildcard}, []string{"ssn"})
		assert.Equal(t, types.Record{"name": "BVA", "email": "me@here.com"}, match(input))
	})

	t.Run("Listed", func(t *testing.T) {
		match := Compile(nil, []string{"email", "ssn", "missing"}, []string{"ssn"})
		assert.Equal(t, types.Record{"email": "me@here.com"}, match(input))
	})

	t.Run("EmptyRules", func(t *testing.T) {
		match := Compile(nil, nil, nil)
		assert.Equal(t, types.Record{}, match(input))
		assert.Equal(t, types.Record{}, match(types.Record{}))
	})

	t.Run("InputUntouched", func(t *testing.T) {
		match := Compile([]string{"name"}, []string{types.Wildcard}, nil)
		out := match(input)
		out["name"] = "changed"
		assert.Equal(t, "BVA", input["name"])
		assert.Equal(t, 3, len(input))
	})
}

// TestCompileMatchesFilter checks every matcher strategy against the engine.
func TestCompileMatchesFilter(t *testing.T) {
	records := []types.Record{
		{},
		{"id": 1},
		{"id": 1, "name": "n"},
		{"id": 1, "name": "n", "secret": "s", "extra": true},
		{"name": "n", "secret": "s"},
		{"*": "star", "id": 2},
	}
	rules := []struct {
		required, accepted, excluded []string
	}{
		{nil, nil, nil},
		{[]string{"id"}, nil, nil},
		{[]string{"id"}, nil, []string{"secret"}},
		{[]string{"id"}, []string{"*"}, []string{"secret"}},
		{[]string{"id"}, []string{"*"}, []string{"id"}},
		{nil, []string{"*"}, nil},
		{nil, []string{"name", "secret"}, []string{"secret"}},
		{[]string{"id", "name"}, []string{"extra", "id"}, nil},
		{[]string{"*"}, nil, nil},
	}
	for i, rule := range rules {
		match := Compile(rule.required, rule.accepted, rule.excluded)
		cfg := types.NewFilterConfig(
			types.WithRequired(rule.required...),
			types.WithAccepted(rule.accepted...),
			types.WithExcluded(rule.excluded...),
		)
		for j, rec := range records {
			want, _, err := Filter(rec.Copy(), nil, cfg)
			got := match(rec)
			if err != nil {
				assert.Nil(t, got, "rule %d record %d", i, j)
				continue
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("rule %d record %d (-filter +matcher):\n%s", i, j, diff)
			}
		}
	}
}

func TestCompileConcurrent(t *testing.T) {
	match := Compile([]string{"id"}, []string{types.Wildcard}, []string{"secret"})
	shared := types.Record{"id": 1, "secret": "s", "a": "b"}
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			out := match(shared)
			if len(out) != 2 || out["a"] != "b" {
				return fmt.Errorf("unexpected output %v", out)
			}
			return nil
		})
	}
	assert.Nil(t, g.Wait())
	assert.Equal(t, 3, len(shared))
}
