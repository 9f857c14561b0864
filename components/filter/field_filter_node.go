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
	"fmt"

	"github.com/rulego/paramfilter"
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/components/base"
	"github.com/rulego/paramfilter/engine"
	"github.com/rulego/paramfilter/utils/maps"
	"github.com/rulego/paramfilter/utils/str"
)

// init 注册FieldFilterNode组件
// init registers the FieldFilterNode component with the default registry.
func init() {
	Registry.Add(&FieldFilterNode{})
}

// FieldFilterNodeConfiguration FieldFilterNode配置结构
// FieldFilterNodeConfiguration defines the configuration of the FieldFilterNode.
type FieldFilterNodeConfiguration struct {
	// CheckAllKeys 决定字段检查逻辑
	// CheckAllKeys determines the field checking logic:
	//   - true: all the specified fields must exist for the message to pass
	//   - false: any specified field existing passes the message
	CheckAllKeys bool
	// DataNames 要在消息数据中检查的字段名称，多个字段名称用逗号分隔
	// DataNames lists the comma-separated fields to check in the message data.
	// Only applicable when the message data type is JSON.
	//
	// Example: "temperature,humidity,pressure"
	DataNames string
	// MetadataNames 要在消息元数据中检查的字段名称，多个字段名称用逗号分隔
	// MetadataNames lists the comma-separated fields to check in the metadata.
	//
	// Example: "deviceId,location,timestamp"
	MetadataNames string
}

// FieldFilterNode 根据消息数据和元数据中字段的存在性路由消息，不检查字段值
// FieldFilterNode routes messages to True or False depending on the presence
// of fields in the message data and metadata. Values are not looked at.
//
// 验证逻辑 - Validation logic:
//   - CheckAllKeys=true: 所有指定字段都必须存在 - All specified fields must exist
//   - CheckAllKeys=false: 至少一个指定字段必须存在 - At least one specified field must exist
//   - 空字段列表在验证中被忽略 - Empty field lists are ignored
//
// 不是JSON对象的数据发送到 `Failure` 关系。
// Data that is not a JSON object goes to Failure.
type FieldFilterNode struct {
	// Config 字段过滤器配置
	// Config holds the field filter configuration
	Config FieldFilterNodeConfiguration
	// DataNamesList 要检查的数据字段名称列表
	// DataNamesList contains the parsed list of data field names to check
	DataNamesList []string
	// MetadataNamesList 要检查的元数据字段名称列表
	// MetadataNamesList contains the parsed list of metadata field names to check
	MetadataNamesList []string

	allData     paramfilter.Matcher
	allMetadata paramfilter.Matcher
}

// Type 返回组件类型
// Type returns the component type identifier.
func (x *FieldFilterNode) Type() string {
	return "fieldFilter"
}

// New 创建新实例
// New creates a new instance.
func (x *FieldFilterNode) New() types.Node {
	return &FieldFilterNode{}
}

// Init 初始化组件，解析逗号分隔的字段名称
// Init parses the comma-separated field names.
func (x *FieldFilterNode) Init(ruleConfig types.Config, configuration types.Configuration) error {
	var config FieldFilterNodeConfiguration
	err := maps.Map2Struct(configuration, &config)
	x.Config = config
	x.DataNamesList = str.SplitNames(config.DataNames)
	x.MetadataNamesList = str.SplitNames(config.MetadataNames)
	x.allData = paramfilter.NewMatcher(x.DataNamesList, nil, nil)
	x.allMetadata = paramfilter.NewMatcher(x.MetadataNamesList, nil, nil)
	return err
}

// OnMsg 处理消息，检查数据和元数据中的字段是否存在
// OnMsg checks the field presence and routes the message.
func (x *FieldFilterNode) OnMsg(ctx types.RuleContext, msg types.RuleMsg) {
	var dataMap types.Record
	if msg.DataType == types.JSON {
		data, err := base.NodeUtils.GetData(msg)
		if err != nil {
			ctx.TellFailure(msg, err)
			return
		}
		m, ok := data.(map[string]interface{})
		if !ok {
			ctx.TellFailure(msg, fmt.Errorf("fieldFilter: data is not a JSON object: %s", str.Preview(msg.Data, types.PreviewLength)))
			return
		}
		dataMap = m
	}

	if x.Config.CheckAllKeys {
		if x.checkAllKeysMetadata(msg.Metadata) && x.checkAllKeysData(dataMap) {
			ctx.TellNext(msg, types.True)
		} else {
			ctx.TellNext(msg, types.False)
		}
	} else {
		if x.checkAtLeastOneMetadata(msg.Metadata) || x.checkAtLeastOneData(dataMap) {
			ctx.TellNext(msg, types.True)
		} else {
			ctx.TellNext(msg, types.False)
		}
	}
}

// Destroy 清理资源
// Destroy releases nothing.
func (x *FieldFilterNode) Destroy() {
}

// checkAllKeysMetadata 检查所有指定的元数据字段是否存在
// checkAllKeysMetadata validates that all specified metadata fields exist.
func (x *FieldFilterNode) checkAllKeysMetadata(metadata types.Metadata) bool {
	rec, _ := engine.Normalize(metadata)
	return x.allMetadata(rec) != nil
}

// checkAllKeysData 检查所有指定的数据字段是否存在
// checkAllKeysData validates that all specified data fields exist.
func (x *FieldFilterNode) checkAllKeysData(data types.Record) bool {
	return x.allData(data) != nil
}

// checkAtLeastOneMetadata 检查是否至少存在一个指定的元数据字段
// checkAtLeastOneMetadata validates that at least one specified metadata field exists.
func (x *FieldFilterNode) checkAtLeastOneMetadata(metadata types.Metadata) bool {
	for _, item := range x.MetadataNamesList {
		if metadata.Has(item) {
			return true
		}
	}
	return false
}

// checkAtLeastOneData 检查是否至少存在一个指定的数据字段
// checkAtLeastOneData validates that at least one specified data field exists.
func (x *FieldFilterNode) checkAtLeastOneData(data types.Record) bool {
	for _, item := range x.DataNamesList {
		if data.Has(item) {
			return true
		}
	}
	return false
}
