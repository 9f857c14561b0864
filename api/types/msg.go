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
	"time"

	"github.com/gofrs/uuid/v5"
)

// DataType 消息数据类型
// DataType is the message data type.
type DataType string

const (
	JSON = DataType("JSON")
	TEXT = DataType("TEXT")
)

// Metadata 规则引擎消息元数据
type Metadata map[string]string

// NewMetadata 创建一个新的规则引擎消息元数据实例
func NewMetadata() Metadata {
	return make(Metadata)
}

// BuildMetadata 通过map，创建一个新的规则引擎消息元数据实例
func BuildMetadata(data Metadata) Metadata {
	metadata := make(Metadata)
	for k, v := range data {
		metadata[k] = v
	}
	return metadata
}

// Copy 复制
func (md Metadata) Copy() Metadata {
	return BuildMetadata(md)
}

// Has 是否存在某个key
func (md Metadata) Has(key string) bool {
	_, ok := md[key]
	return ok
}

// PutValue 设置值，忽略空key
func (md Metadata) PutValue(key, value string) {
	if key != "" {
		md[key] = value
	}
}

// RuleMsg 规则引擎消息
// RuleMsg is a message flowing through rule nodes.
type RuleMsg struct {
	// 消息时间戳(毫秒)
	// Ts is the message timestamp in milliseconds.
	Ts int64 `json:"ts"`
	// 消息ID，同一条消息在规则引擎流转，整个过程是唯一的
	// Id is unique for the whole life of the message.
	Id       string   `json:"id"`
	DataType DataType `json:"dataType"`
	// 消息类型，例如 POST_TELEMETRY 或 USER_SIGNUP
	// Type classifies the message, e.g. POST_TELEMETRY or USER_SIGNUP.
	Type     string   `json:"type"`
	Data     string   `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// NewMsg 创建一个新的消息实例，并通过uuid生成消息ID
func NewMsg(ts int64, msgType string, dataType DataType, metaData Metadata, data string) RuleMsg {
	return newMsg("", ts, msgType, dataType, metaData, data)
}

func newMsg(id string, ts int64, msgType string, dataType DataType, metaData Metadata, data string) RuleMsg {
	if ts <= 0 {
		ts = time.Now().UnixMilli()
	}
	if id == "" {
		uuId, _ := uuid.NewV4()
		id = uuId.String()
	}
	if metaData == nil {
		metaData = NewMetadata()
	}
	return RuleMsg{
		Ts:       ts,
		Id:       id,
		Type:     msgType,
		DataType: dataType,
		Data:     data,
		Metadata: metaData,
	}
}

// Copy 复制，元数据不与原消息共享
// Copy returns a copy of the message with its own metadata.
func (m *RuleMsg) Copy() RuleMsg {
	return newMsg(m.Id, m.Ts, m.Type, m.DataType, m.Metadata.Copy(), m.Data)
}
