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

import "errors"

const (
	// Wildcard 通配符，只在accepted中生效
	// Wildcard in the accepted FieldSet admits every field that is not excluded.
	// It has no special meaning in the required or excluded FieldSets.
	Wildcard = "*"
	// UnkeyedField is the key given to a lone scalar input.
	UnkeyedField = "_"
	// FlagValue is the value given to the unpaired last element of an odd-length list.
	FlagValue = 1
	// Admitted is the status of a successful filtering without notices.
	Admitted = "Admitted"
	// PreviewLength is the number of characters of a coerced scalar shown in notices.
	PreviewLength = 20
)

const (
	// StatusMetadataKey is the metadata key the paramFilter node stores the status under.
	StatusMetadataKey = "paramFilterStatus"
)

var (
	// ErrInsufficientFields 字段数量少于必填字段数量
	// ErrInsufficientFields is returned when the record has fewer fields than required.
	ErrInsufficientFields = errors.New("insufficient fields")
	// ErrMissingRequiredFields 缺少必填字段
	// ErrMissingRequiredFields is returned when required fields are absent from the record.
	ErrMissingRequiredFields = errors.New("missing required fields")
)
