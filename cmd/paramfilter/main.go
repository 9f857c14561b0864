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

// paramfilter filters the fields of JSON or YAML documents from the command line.
//
// Usage:
//
//	paramfilter [file] --required=name,email --accepted=phone --excluded=ssn [--debug]
//	paramfilter [file] --config=rules.yaml
//	paramfilter [file] --lines --accept-all --excluded=password --parallel=8
//
// Without a file the document is read from stdin.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
