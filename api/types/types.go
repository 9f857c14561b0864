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

// Package types defines the shared contracts of paramfilter: the Record and
// FieldSet data model, filter configuration, result errors, logging, and the
// rule-engine node interfaces used by the components package.
package types

// 节点之间的关系类型
// Relation types between rule nodes.
const (
	Success = "Success"
	Failure = "Failure"
	True    = "True"
	False   = "False"
)

// Configuration 组件配置类型
// Configuration is the untyped component configuration.
type Configuration map[string]interface{}

// Node 规则引擎节点组件接口
// Node is a rule-engine component.
// Every rule node creates its own instance through New, then Init is called
// once with the node configuration before any OnMsg.
type Node interface {
	// New 创建一个组件新实例
	// New creates a new instance of the component.
	New() Node
	// Type 组件类型，类型不能重复
	// Type returns the component type. It must be unique within a registry.
	Type() string
	// Init 组件初始化
	// Init initializes the component with its configuration.
	Init(ruleConfig Config, configuration Configuration) error
	// OnMsg processes a message. Implementations must finish by calling
	// ctx.TellSuccess, ctx.TellFailure or ctx.TellNext.
	OnMsg(ctx RuleContext, msg RuleMsg)
	// Destroy 销毁，做一些资源释放操作
	// Destroy releases the resources held by the component.
	Destroy()
}

// RuleContext 规则引擎消息处理上下文接口
// RuleContext routes a processed message to the next node.
type RuleContext interface {
	// TellSuccess 通知规则引擎处理成功，消息发送到`Success`关系的节点
	// TellSuccess sends the message through the `Success` relation.
	TellSuccess(msg RuleMsg)
	// TellFailure 通知规则引擎处理失败，消息发送到`Failure`关系的节点
	// TellFailure sends the message through the `Failure` relation.
	TellFailure(msg RuleMsg, err error)
	// TellNext 使用指定的relationTypes，发送消息到对应的节点
	// TellNext sends the message through the given relation types.
	TellNext(msg RuleMsg, relationTypes ...string)
	// NewMsg 创建新的消息实例
	// NewMsg creates a new message instance.
	NewMsg(msgType string, metaData Metadata, data string) RuleMsg
	// Config returns the rule engine configuration.
	Config() Config
}
