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

// Package maps decodes untyped configuration maps into structs.
package maps

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/rulego/paramfilter/utils/cast"
	"github.com/rulego/paramfilter/utils/str"
)

// Map2Struct Decode takes an input structure and uses reflection to translate it to
// the output structure. output must be a pointer to a map or struct.
// Slices and maps already held by output are replaced, not merged.
func Map2Struct(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ZeroFields: true,
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// DecodeWeak decodes input into output accepting the loose forms found in rule
// configurations: comma-separated strings for string lists and "true"/"1"
// style strings for booleans and integers. Like Map2Struct it replaces the
// slices and maps already held by output.
func DecodeWeak(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			namesHook,
			scalarHook,
		),
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// namesHook splits a comma-separated string into a []string.
func namesHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}
	return str.SplitNames(data.(string)), nil
}

// scalarHook converts strings to the bool or int the target field expects.
func scalarHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Bool:
		return cast.ToBoolE(data)
	case reflect.Int:
		return cast.ToIntE(data)
	default:
		return data, nil
	}
}
