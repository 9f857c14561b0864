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

// Package base provides helpers shared by the rule node components.
package base

import (
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/utils/json"
)

var NodeUtils = &nodeUtils{}

type nodeUtils struct {
}

// GetData decodes the message data. JSON data is decoded into whatever
// document it holds, any other data type is returned as the raw string.
func (n *nodeUtils) GetData(msg types.RuleMsg) (interface{}, error) {
	if msg.DataType != types.JSON {
		return msg.Data, nil
	}
	return json.UnmarshalValue([]byte(msg.Data))
}

// GetLogger returns the logger of the rule configuration, or the default one.
func (n *nodeUtils) GetLogger(ruleConfig types.Config) types.Logger {
	return types.NewLogger(ruleConfig.Logger)
}
