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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFieldSet(t *testing.T) {
	assert.Equal(t, FieldSet{}, NewFieldSet())
	assert.Equal(t, FieldSet{"a", "b"}, NewFieldSet("a", "", "b", "a"))
	assert.Equal(t, FieldSet{" name", "name", "  "}, NewFieldSet(" name", "name", "  ", " name"))
	assert.True(t, NewFieldSet("id", Wildcard).HasWildcard())
	assert.False(t, NewFieldSet("id").Contains(" id"))
}

func TestRecord(t *testing.T) {
	r := Record{"b": 1, "a": nil}
	assert.True(t, r.Has("a"))
	assert.False(t, r.Has("c"))
	assert.Equal(t, []string{"a", "b"}, r.Keys())

	c := r.Copy()
	c["c"] = 3
	assert.False(t, r.Has("c"))
}

func TestRuleMsgCopy(t *testing.T) {
	msg := NewMsg(0, "EVENT", JSON, Metadata{"k": "v"}, `{"a":1}`)
	c := msg.Copy()
	c.Metadata.PutValue("k", "changed")
	assert.Equal(t, "v", msg.Metadata["k"])
	assert.Equal(t, msg.Id, c.Id)
	assert.Equal(t, msg.Data, c.Data)
}
