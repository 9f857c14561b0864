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

package filter

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/test"
	"github.com/rulego/paramfilter/utils/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamFilterNode(t *testing.T) {
	var targetNodeType = "paramFilter"

	t.Run("NewNode", func(t *testing.T) {
		test.NodeNew(t, targetNodeType, &ParamFilterNode{}, Registry)
	})

	t.Run("InitNode", func(t *testing.T) {
		node, err := test.CreateAndInitNode(targetNodeType, types.Configuration{
			"required": "name,email",
			"accepted": []interface{}{"phone"},
			"excluded": "password",
			"debug":    "true",
		}, Registry)
		require.Nil(t, err)
		config := node.(*ParamFilterNode).Config
		assert.Equal(t, []string{"name", "email"}, config.Required)
		assert.Equal(t, []string{"phone"}, config.Accepted)
		assert.Equal(t, []string{"password"}, config.Excluded)
		assert.True(t, config.Debug)

		_, err = test.CreateAndInitNode(targetNodeType, types.Configuration{
			"debug": "sometimes",
		}, Registry)
		assert.NotNil(t, err)
	})

	t.Run("ReInitReplacesConfig", func(t *testing.T) {
		node, err := test.CreateAndInitNode(targetNodeType, types.Configuration{
			"required": "name,email",
			"accepted": "phone",
			"debug":    true,
		}, Registry)
		require.Nil(t, err)
		require.Nil(t, node.Init(types.NewConfig(), types.Configuration{
			"required": "id",
		}))
		config := node.(*ParamFilterNode).Config
		assert.Equal(t, []string{"id"}, config.Required)
		assert.Equal(t, 0, len(config.Accepted))
		assert.False(t, config.Debug)

		test.NodeOnMsg(t, node, []test.Msg{
			{MsgType: "EVENT", Data: `{"id":1,"phone":"x"}`},
		}, func(msg types.RuleMsg, relationType string, err error) {
			assert.Equal(t, types.Success, relationType)
			assert.Equal(t, `{"id":1}`, msg.Data)
		})
	})

	t.Run("DefaultConfig", func(t *testing.T) {
		node, err := test.CreateAndInitNode(targetNodeType, types.Configuration{}, Registry)
		require.Nil(t, err)
		test.NodeOnMsg(t, node, []test.Msg{
			{MsgType: "USER_SIGNUP", Data: `{"name":"BVA"}`},
		}, func(msg types.RuleMsg, relationType string, err error) {
			assert.Equal(t, types.Success, relationType)
			assert.Equal(t, "{}", msg.Data)
		})
	})

	t.Run("OnMsg", func(t *testing.T) {
		node, err := test.CreateAndInitNode(targetNodeType, types.Configuration{
			"required": "name,email",
			"excluded": "ssn",
		}, Registry)
		require.Nil(t, err)

		metaData := types.BuildMetadata(types.Metadata{"productType": "A001"})
		var relations []string
		test.NodeOnMsg(t, node, []test.Msg{
			{
				MetaData: metaData,
				MsgType:  "USER_SIGNUP",
				Data:     `{"name":"BVA","email":"me@here.com","ssn":"111-22-3333"}`,
			},
			{
				MetaData: metaData,
				MsgType:  "USER_SIGNUP",
				Data:     `{"name":"BVA"}`,
			},
			{
				MetaData: metaData,
				MsgType:  "USER_SIGNUP",
				Data:     `aa`,
			},
		}, func(msg types.RuleMsg, relationType string, err error) {
			relations = append(relations, relationType)
			switch len(relations) {
			case 1:
				assert.Equal(t, types.Success, relationType)
				data, err := json.UnmarshalValue([]byte(msg.Data))
				require.Nil(t, err)
				assert.Equal(t, map[string]interface{}{"name": "BVA", "email": "me@here.com"}, data)
				assert.Equal(t, types.Admitted, msg.Metadata[types.StatusMetadataKey])
				assert.Equal(t, "A001", msg.Metadata["productType"])
			case 2:
				assert.Equal(t, types.Failure, relationType)
				assert.True(t, errors.Is(err, types.ErrInsufficientFields))
				assert.Equal(t, `{"name":"BVA"}`, msg.Data)
				assert.Equal(t, err.Error(), msg.Metadata[types.StatusMetadataKey])
			case 3:
				assert.Equal(t, types.Failure, relationType)
				assert.NotNil(t, err)
			}
		})
		assert.Equal(t, 3, len(relations))
		assert.False(t, metaData.Has(types.StatusMetadataKey))
	})

	t.Run("ArrayAndText", func(t *testing.T) {
		node, err := test.CreateAndInitNode(targetNodeType, types.Configuration{
			"accepted": "a,c,_",
		}, Registry)
		require.Nil(t, err)

		var results []types.RuleMsg
		test.NodeOnMsg(t, node, []test.Msg{
			{MsgType: "ARGS", Data: `["a","b","c"]`},
			{MsgType: "ARGS", Data: "hello", DataType: types.TEXT},
		}, func(msg types.RuleMsg, relationType string, err error) {
			assert.Equal(t, types.Success, relationType)
			results = append(results, msg)
		})
		require.Equal(t, 2, len(results))

		assert.Equal(t, `{"a":"b","c":1}`, results[0].Data)
		assert.Contains(t, results[0].Metadata[types.StatusMetadataKey], "Odd number of arguments")

		assert.Equal(t, `{"_":"hello"}`, results[1].Data)
		assert.Equal(t, types.JSON, results[1].DataType)
		assert.Contains(t, results[1].Metadata[types.StatusMetadataKey], "'hello'")
	})

	t.Run("DebugLogs", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, "", 0)
		node, err := test.CreateAndInitNode(targetNodeType, types.Configuration{
			"required": "id",
			"accepted": "*",
			"excluded": "secret",
			"debug":    true,
		}, Registry, types.WithLogger(logger))
		require.Nil(t, err)

		test.NodeOnMsg(t, node, []test.Msg{
			{MsgType: "EVENT", Data: `{"id":1,"secret":"x","extra":"y"}`},
		}, func(msg types.RuleMsg, relationType string, err error) {
			assert.Equal(t, types.Success, relationType)
			assert.Equal(t, `{"extra":"y","id":1}`, msg.Data)
			assert.Equal(t, "Ignoring excluded arguments: 'secret'", msg.Metadata[types.StatusMetadataKey])
		})
		assert.Contains(t, buf.String(), "Ignoring excluded arguments: 'secret'")
	})
}
