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

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rulego/paramfilter"
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/utils/json"
	"github.com/rulego/paramfilter/utils/maps"
)

// maxLineSize bounds a single document in --lines mode.
const maxLineSize = 4 * 1024 * 1024

type result struct {
	Record types.Record `json:"record"`
	Status string       `json:"status"`
	Error  string       `json:"error,omitempty"`
	err    error
}

func apply(filter *paramfilter.ParamFilter, doc interface{}) result {
	out, status, err := filter.Apply(doc)
	if err != nil {
		return failed(err)
	}
	return result{Record: out, Status: status}
}

func failed(err error) result {
	return result{Status: err.Error(), Error: err.Error(), err: err}
}

func writeResult(w io.Writer, res result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func decodeDocument(r io.Reader, format string) (interface{}, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if format == formatYAML {
		var doc interface{}
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return json.UnmarshalValue(bytes.TrimSpace(b))
}

// loadRules reads a YAML rules file.
func loadRules(path string) (paramfilter.Configuration, error) {
	var rules paramfilter.Configuration
	b, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules: %w", err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return rules, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if err := maps.DecodeWeak(raw, &rules); err != nil {
		return rules, fmt.Errorf("decode rules %s: %w", path, err)
	}
	return rules, nil
}

// filterLines filters one JSON document per non-blank line with up to
// parallel workers and writes the results in input order. It returns the
// number of documents and how many of them failed.
func filterLines(ctx context.Context, filter *paramfilter.ParamFilter, r io.Reader, w io.Writer, parallel int) (int, int, error) {
	type document struct {
		no   int
		data []byte
	}
	var lines []document
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for no := 1; scanner.Scan(); no++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, document{no: no, data: append([]byte(nil), line...)})
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("read lines: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if parallel < 1 {
		parallel = 1
	}
	results := make([]result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := json.UnmarshalValue(line.data)
			if err != nil {
				results[i] = failed(fmt.Errorf("line %d: %w", line.no, err))
				return nil
			}
			results[i] = apply(filter, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return len(lines), 0, err
	}

	failedCount := 0
	for _, res := range results {
		if res.err != nil {
			failedCount++
		}
		if err := writeResult(w, res); err != nil {
			return len(lines), failedCount, err
		}
	}
	return len(lines), failedCount, nil
}
