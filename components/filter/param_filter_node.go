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
	"github.com/rulego/paramfilter"
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/components/base"
	"github.com/rulego/paramfilter/utils/json"
	"github.com/rulego/paramfilter/utils/maps"
)

// init 注册ParamFilterNode组件
// init registers the ParamFilterNode component with the default registry.
func init() {
	Registry.Add(&ParamFilterNode{})
}

// ParamFilterNodeConfiguration ParamFilterNode配置结构
// ParamFilterNodeConfiguration defines the configuration of the ParamFilterNode.
// Lists are given as string arrays or comma-separated strings.
type ParamFilterNodeConfiguration struct {
	// Required 必须存在于消息数据中的字段
	// Required fields must all be present in the message data.
	//
	// Example: "name,email"
	Required []string
	// Accepted 存在时保留的字段，"*" 保留所有未排除的字段
	// Accepted fields are kept when present. "*" keeps every field that is not excluded.
	Accepted []string
	// Excluded 总是丢弃的字段，必填字段除外
	// Excluded fields are always dropped, unless required.
	Excluded []string
	// Debug 在状态中加入被丢弃字段的警告，并记录日志
	// Debug adds warnings about dropped fields to the status and logs them.
	Debug bool
}

// ParamFilterNode 按字段名称过滤消息数据的组件
// ParamFilterNode filters the fields of the message data.
//
// 数据解析 - Data decoding:
//   - JSON对象：直接过滤 - A JSON object is filtered as is
//   - JSON数组：按键值对交替解析 - A JSON array is read as alternating keys and values
//   - 其他JSON值或非JSON数据：放在 "_" 键下 - Any other value goes under the key "_"
//
// 成功时数据替换为保留字段的JSON对象，状态写入元数据 `paramFilterStatus`，
// 消息发送到 `Success` 关系。缺少必填字段时消息原样发送到 `Failure` 关系。
// On success the data is replaced by the JSON object of the admitted fields,
// the status is stored in the `paramFilterStatus` metadata and the message is
// sent through the `Success` relation. A missing required field sends it
// through the `Failure` relation, with the data unchanged.
type ParamFilterNode struct {
	// Config 节点配置
	// Config holds the node configuration.
	Config ParamFilterNodeConfiguration
	filter *paramfilter.ParamFilter
	logger types.Logger
}

// Type 返回组件类型
// Type returns the component type identifier.
func (x *ParamFilterNode) Type() string {
	return "paramFilter"
}

// New 创建新实例
// New creates a new instance.
func (x *ParamFilterNode) New() types.Node {
	return &ParamFilterNode{}
}

// Init 初始化组件，解析配置并创建过滤器
// Init decodes the configuration and builds the filter.
func (x *ParamFilterNode) Init(ruleConfig types.Config, configuration types.Configuration) error {
	var config ParamFilterNodeConfiguration
	if err := maps.DecodeWeak(configuration, &config); err != nil {
		return err
	}
	x.Config = config
	x.filter = paramfilter.New(
		types.WithRequired(config.Required...),
		types.WithAccepted(config.Accepted...),
		types.WithExcluded(config.Excluded...),
		types.WithDebug(config.Debug),
	)
	x.logger = base.NodeUtils.GetLogger(ruleConfig)
	return nil
}

// OnMsg 处理消息，过滤消息数据的字段
// OnMsg filters the message data.
func (x *ParamFilterNode) OnMsg(ctx types.RuleContext, msg types.RuleMsg) {
	data, err := base.NodeUtils.GetData(msg)
	if err != nil {
		ctx.TellFailure(msg, err)
		return
	}
	msg = msg.Copy()

	out, status, err := x.filter.Apply(data)
	msg.Metadata.PutValue(types.StatusMetadataKey, status)
	if err != nil {
		ctx.TellFailure(msg, err)
		return
	}
	b, err := json.Marshal(out)
	if err != nil {
		ctx.TellFailure(msg, err)
		return
	}
	if x.Config.Debug && status != types.Admitted {
		x.logger.Printf("paramFilter msgId=%s: %s", msg.Id, status)
	}
	msg.DataType = types.JSON
	msg.Data = string(b)
	ctx.TellSuccess(msg)
}

// Destroy 清理资源
// Destroy releases nothing.
func (x *ParamFilterNode) Destroy() {
}
