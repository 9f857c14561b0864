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

import "sync"

// SafeComponentSlice 安全的组件列表切片
// SafeComponentSlice is a component list safe for concurrent registration.
type SafeComponentSlice struct {
	components []Node
	sync.Mutex
}

// Add 线程安全地添加元素
func (p *SafeComponentSlice) Add(nodes ...Node) {
	p.Lock()
	defer p.Unlock()
	p.components = append(p.components, nodes...)
}

// NewNode 根据组件类型创建新的组件实例
// NewNode creates a new instance of the component registered under nodeType.
func (p *SafeComponentSlice) NewNode(nodeType string) (Node, bool) {
	p.Lock()
	defer p.Unlock()
	for _, component := range p.components {
		if component.Type() == nodeType {
			return component.New(), true
		}
	}
	return nil, false
}
