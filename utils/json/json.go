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

// Package json wraps encoding/json with the encoding options used across
// paramfilter: no HTML escaping and no trailing newline.
package json

import (
	"bytes"
	"encoding/json"
)

// Marshal marshals v to json without escaping &, < and >.
func Marshal(v interface{}) ([]byte, error) {
	return Marshal2(v, false)
}

// Marshal2 marshals v to json, escaping HTML characters when escapeHTML is true.
func Marshal2(v interface{}, escapeHTML bool) ([]byte, error) {
	var byteBuf bytes.Buffer
	encoder := json.NewEncoder(&byteBuf)
	encoder.SetEscapeHTML(escapeHTML)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(byteBuf.Bytes(), []byte("\n")), nil
}

// UnmarshalValue decodes any json document: object, array or scalar.
// Numbers are decoded as float64.
func UnmarshalValue(b []byte) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
