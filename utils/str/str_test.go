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

package str

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	var x interface{}
	x = 123
	assert.Equal(t, "123", ToString(x))
	x = "this is test"
	assert.Equal(t, "this is test", ToString(x))
	x = []byte("this is test")
	assert.Equal(t, "this is test", ToString(x))
	x = 1.5
	assert.Equal(t, "1.5", ToString(x))
	x = errors.New("boom")
	assert.Equal(t, "boom", ToString(x))
	assert.Equal(t, "", ToString(nil))
	var u *url.URL
	assert.Equal(t, "", ToString(u))
	var ts *time.Time
	assert.Equal(t, "", ToString(ts))

	x = User{Username: "lala", Age: 25}
	assert.Equal(t, "{\"Username\":\"lala\",\"Age\":25}", ToString(x))

	x = map[string]string{
		"name": "lala",
	}
	assert.Equal(t, "{\"name\":\"lala\"}", ToString(x))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello", Preview("hello", 20))
	assert.Equal(t, "12345678901234567890", Preview("12345678901234567890", 20))
	assert.Equal(t, "12345678901234567890...", Preview("123456789012345678901", 20))
	assert.Equal(t, "héllo...", Preview("héllo wörld", 5))
	assert.Equal(t, "...", Preview("abc", -1))
}

func TestQuoteJoin(t *testing.T) {
	assert.Equal(t, "", QuoteJoin(nil))
	assert.Equal(t, "'name'", QuoteJoin([]string{"name"}))
	assert.Equal(t, "'name', 'email'", QuoteJoin([]string{"name", "email"}))
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitNames(" a, b,,c ,"))
	assert.Equal(t, []string{}, SplitNames(""))
	assert.Equal(t, []string{"x"}, TrimEmpty([]string{"", " ", "x "}))
}

type User struct {
	Username string
	Age      int
}
