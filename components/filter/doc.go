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

// Package filter provides the field filtering components of paramfilter for
// rule chains:
//
// - ParamFilter: keeps the required and accepted fields of the message data,
// drops the excluded and unrecognized ones, and fails when a required field
// is missing.
// - FieldFilter: routes a message to True or False depending on the presence
// of fields in its data and metadata.
//
// Each component is registered with the Registry. Reference them by Type in
// a rule chain node definition, for example:
//
//	{
//	  "id": "s1",
//	  "type": "paramFilter",
//	  "name": "signup fields",
//	  "configuration": {
//	    "required": "name,email",
//	    "accepted": "phone,company",
//	    "excluded": "password"
//	  }
//	}
package filter

import "github.com/rulego/paramfilter/api/types"

// Registry 默认组件注册器
// Registry holds the components of this package.
var Registry = new(types.SafeComponentSlice)
