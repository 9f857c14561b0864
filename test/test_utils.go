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

// Package test provides helpers to create, initialize and drive rule node
// components in unit tests.
package test

import (
	"fmt"
	"testing"

	"github.com/rulego/paramfilter/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateAndInitNode creates a node instance of targetNodeType and initializes it.
func CreateAndInitNode(targetNodeType string, initConfig types.Configuration, registry *types.SafeComponentSlice, opts ...types.Option) (types.Node, error) {
	node, ok := registry.NewNode(targetNodeType)
	if !ok {
		return nil, fmt.Errorf("component not found. type=%s", targetNodeType)
	}
	err := node.Init(types.NewConfig(opts...), initConfig)
	return node, err
}

// NodeNew checks that targetNode is registered under targetNodeType and that
// New returns a fresh instance of the same kind.
func NodeNew(t *testing.T, targetNodeType string, targetNode types.Node, registry *types.SafeComponentSlice) {
	node, ok := registry.NewNode(targetNodeType)
	require.True(t, ok)
	assert.Equal(t, targetNodeType, node.Type())
	assert.IsType(t, targetNode, node)
	assert.NotSame(t, targetNode, node)
}

// Msg is a message to send to a node under test.
type Msg struct {
	MetaData types.Metadata
	DataType types.DataType
	MsgType  string
	Data     string
}

// NodeOnMsg sends every message of msgList to node, in order, and reports the
// routing through callback.
func NodeOnMsg(t *testing.T, node types.Node, msgList []Msg, callback func(msg types.RuleMsg, relationType string, err error), opts ...types.Option) {
	t.Helper()
	ctx := NewRuleContext(types.NewConfig(opts...), callback)
	for _, item := range msgList {
		dataType := types.JSON
		if item.DataType != "" {
			dataType = item.DataType
		}
		msg := types.NewMsg(0, item.MsgType, dataType, item.MetaData, item.Data)
		node.OnMsg(ctx, msg)
	}
}
