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

package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type User struct {
	Username string
	Age      int
	Address  Address
	Hobbies  []string
}

type Address struct {
	Detail string
}

type Rules struct {
	Required []string
	Accepted []string
	Debug    bool
	Limit    int
}

func TestMap2Struct(t *testing.T) {
	m := make(map[string]interface{})
	m["userName"] = "lala"
	m["Age"] = 5
	m["Address"] = Address{"test"}
	m["Hobbies"] = []string{"c"}
	var user User
	user.Hobbies = []string{"a", "b"}
	require.Nil(t, Map2Struct(m, &user))
	assert.Equal(t, "lala", user.Username)
	assert.Equal(t, 5, user.Age)
	assert.Equal(t, "test", user.Address.Detail)
	assert.Equal(t, 1, len(user.Hobbies))

	var bad User
	assert.NotNil(t, Map2Struct(map[string]interface{}{"Age": "five"}, &bad))
}

func TestDecodeWeak(t *testing.T) {
	t.Run("CommaSeparated", func(t *testing.T) {
		var rules Rules
		err := DecodeWeak(map[string]interface{}{
			"required": "name, email,",
			"accepted": []interface{}{"a", "b"},
			"debug":    "true",
			"limit":    "3",
		}, &rules)
		require.Nil(t, err)
		assert.Equal(t, []string{"name", "email"}, rules.Required)
		assert.Equal(t, []string{"a", "b"}, rules.Accepted)
		assert.True(t, rules.Debug)
		assert.Equal(t, 3, rules.Limit)
	})

	t.Run("Native", func(t *testing.T) {
		var rules Rules
		err := DecodeWeak(map[string]interface{}{
			"required": []string{"id"},
			"debug":    true,
		}, &rules)
		require.Nil(t, err)
		assert.Equal(t, []string{"id"}, rules.Required)
		assert.True(t, rules.Debug)
	})

	t.Run("ReplacesLists", func(t *testing.T) {
		rules := Rules{Required: []string{"old1", "old2"}, Accepted: []string{"x"}}
		err := DecodeWeak(map[string]interface{}{
			"required": "id",
			"accepted": []string{},
		}, &rules)
		require.Nil(t, err)
		assert.Equal(t, []string{"id"}, rules.Required)
		assert.Equal(t, 0, len(rules.Accepted))
	})

	t.Run("Malformed", func(t *testing.T) {
		var rules Rules
		assert.NotNil(t, DecodeWeak(map[string]interface{}{"debug": "sometimes"}, &rules))
		assert.NotNil(t, DecodeWeak(map[string]interface{}{"required": map[string]interface{}{"a": 1}}, &rules))
	})
}
