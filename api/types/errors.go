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
	"fmt"

	"github.com/rulego/paramfilter/utils/str"
)

// FilterError 过滤失败错误，Fields为相关的字段名称
// FilterError is the failure of a filtering operation.
// Kind is ErrInsufficientFields or ErrMissingRequiredFields.
type FilterError struct {
	Kind   error
	Fields []string
}

func (e *FilterError) Error() string {
	switch e.Kind {
	case ErrInsufficientFields:
		return fmt.Sprintf("Unable to initialize without required arguments: %s", str.QuoteJoin(e.Fields))
	case ErrMissingRequiredFields:
		return fmt.Sprintf("Missing required arguments: %s", str.QuoteJoin(e.Fields))
	default:
		return fmt.Sprintf("%v: %s", e.Kind, str.QuoteJoin(e.Fields))
	}
}

func (e *FilterError) Unwrap() error {
	return e.Kind
}
