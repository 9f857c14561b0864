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
	"reflect"

	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/utils/str"
)

// Input is an argument bag classified by shape.
// It is one of KeyedInput, OrderedInput or ScalarInput.
type Input interface {
	normalize() (types.Record, []string)
}

// KeyedInput is an already keyed argument bag.
type KeyedInput types.Record

// OrderedInput is a list of alternating keys and values, or a list whose
// first element is a keyed collection.
type OrderedInput []interface{}

// ScalarInput is a single value that is not a collection.
type ScalarInput struct {
	Value interface{}
}

// InputOf classifies v. Maps with string keys are keyed, slices and arrays
// are ordered, everything else is a scalar. nil is an empty keyed input.
func InputOf(v interface{}) Input {
	switch x := v.(type) {
	case nil:
		return KeyedInput{}
	case Input:
		return x
	case types.Record:
		return KeyedInput(x)
	case map[string]interface{}:
		return KeyedInput(x)
	case types.Metadata:
		return keyedFromStrings(x)
	case map[string]string:
		return keyedFromStrings(x)
	case []interface{}:
		return OrderedInput(x)
	case []string:
		list := make(OrderedInput, len(x))
		for i, item := range x {
			list[i] = item
		}
		return list
	case []byte:
		return ScalarInput{Value: string(x)}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keyed := make(KeyedInput, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				keyed[iter.Key().String()] = iter.Value().Interface()
			}
			return keyed
		}
	case reflect.Slice, reflect.Array:
		list := make(OrderedInput, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			list[i] = rv.Index(i).Interface()
		}
		return list
	}
	return ScalarInput{Value: v}
}

// Normalize converts v into a new Record, returning the notices describing
// any structural coercion applied to it.
func Normalize(v interface{}) (types.Record, []string) {
	return InputOf(v).normalize()
}

func (in KeyedInput) normalize() (types.Record, []string) {
	return types.Record(in).Copy(), nil
}

func (in OrderedInput) normalize() (types.Record, []string) {
	if len(in) == 0 {
		return types.Record{}, nil
	}
	// A keyed first element is the whole argument bag, the rest is dropped.
	if keyed, ok := asKeyed(in[0]); ok {
		return types.Record(keyed).Copy(), nil
	}
	if len(in) == 1 {
		return ScalarInput{Value: in[0]}.normalize()
	}

	rec := make(types.Record, (len(in)+1)/2)
	var notes []string
	n := len(in)
	if n%2 == 1 {
		n--
	}
	for i := 0; i < n; i += 2 {
		rec[str.ToString(in[i])] = in[i+1]
	}
	if n < len(in) {
		flag := str.ToString(in[n])
		rec[flag] = types.FlagValue
		notes = append(notes, fmt.Sprintf("Odd number of arguments provided; last element '%s' converted to flag with value %d", flag, types.FlagValue))
	}
	return rec, notes
}

func (in ScalarInput) normalize() (types.Record, []string) {
	preview := str.Preview(str.ToString(in.Value), types.PreviewLength)
	return types.Record{types.UnkeyedField: in.Value},
		[]string{fmt.Sprintf("Plain text argument accepted with key '%s': '%s'", types.UnkeyedField, preview)}
}

// asKeyed reports whether v is a keyed collection and returns it as such.
func asKeyed(v interface{}) (KeyedInput, bool) {
	if v == nil {
		return nil, false
	}
	switch v.(type) {
	case types.Record, map[string]interface{}, types.Metadata, map[string]string:
		return InputOf(v).(KeyedInput), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return InputOf(v).(KeyedInput), true
	}
	return nil, false
}

func keyedFromStrings(m map[string]string) KeyedInput {
	keyed := make(KeyedInput, len(m))
	for k, v := range m {
		keyed[k] = v
	}
	return keyed
}
