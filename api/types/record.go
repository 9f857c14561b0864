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

import "sort"

// Record 字段名称到字段值的映射，不检查字段值
// Record maps field names to opaque values. Values are never inspected.
type Record map[string]interface{}

// Copy returns a shallow copy of the record.
func (r Record) Copy() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Has reports whether the field is present, whatever its value.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Keys returns the field names in ascending order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FieldSet 有序的字段名称列表
// FieldSet is an ordered list of field names.
type FieldSet []string

// NewFieldSet 创建FieldSet，去掉空名称和重复名称，不修改名称
// NewFieldSet builds a FieldSet from names. Empty names are dropped and
// repeated names keep their first position. Names are otherwise kept as given.
func NewFieldSet(names ...string) FieldSet {
	if len(names) == 0 {
		return FieldSet{}
	}
	seen := make(map[string]struct{}, len(names))
	fs := make(FieldSet, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		fs = append(fs, name)
	}
	return fs
}

// Contains reports whether name is listed literally.
func (fs FieldSet) Contains(name string) bool {
	for _, item := range fs {
		if item == name {
			return true
		}
	}
	return false
}

// HasWildcard reports whether the set lists the Wildcard marker.
func (fs FieldSet) HasWildcard() bool {
	return fs.Contains(Wildcard)
}

// Copy returns an independent copy of the set.
func (fs FieldSet) Copy() FieldSet {
	c := make(FieldSet, len(fs))
	copy(c, fs)
	return c
}
