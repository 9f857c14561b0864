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
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulego/paramfilter"
	"github.com/rulego/paramfilter/api/types"
	"github.com/rulego/paramfilter/utils/str"
)

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

type rootFlags struct {
	required  []string
	accepted  []string
	excluded  []string
	acceptAll bool
	debug     bool
	config    string
	lines     bool
	parallel  int
	format    string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "paramfilter [file]",
		Short:        "Keep the required and accepted fields of a document, drop the others",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&flags.required, "required", nil, "Fields that must be present (comma-separated)")
	f.StringSliceVar(&flags.accepted, "accepted", nil, "Fields kept when present, \"*\" keeps all (comma-separated)")
	f.StringSliceVar(&flags.excluded, "excluded", nil, "Fields always dropped (comma-separated)")
	f.BoolVar(&flags.acceptAll, "accept-all", false, "Keep every field that is not excluded")
	f.BoolVar(&flags.debug, "debug", false, "Report excluded and unrecognized fields in the status")
	f.StringVarP(&flags.config, "config", "c", "", "YAML rules file with required, accepted, excluded and debug keys")
	f.BoolVar(&flags.lines, "lines", false, "Read one JSON document per line")
	f.IntVar(&flags.parallel, "parallel", 4, "Workers used with --lines")
	f.StringVar(&flags.format, "format", formatAuto, "Input format: auto, json or yaml")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Log progress to stderr")
	return cmd
}

func runFilter(cmd *cobra.Command, flags *rootFlags, args []string) error {
	logger := discardLogger()
	if flags.verbose {
		logger = log.New(cmd.ErrOrStderr(), "paramfilter: ", log.LstdFlags)
	}

	filter, err := buildFilter(cmd, flags)
	if err != nil {
		return err
	}
	cfg := filter.Config()
	logger.Printf("rules required=%v accepted=%v excluded=%v debug=%v", cfg.Required, cfg.Accepted, cfg.Excluded, cfg.Debug)

	in := cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
		name = args[0]
	}
	logger.Printf("reading %s", name)

	out := cmd.OutOrStdout()
	if flags.lines {
		n, failed, err := filterLines(cmd.Context(), filter, in, out, flags.parallel)
		logger.Printf("filtered %d lines, %d failed", n, failed)
		return err
	}

	format, err := detectFormat(flags.format, name)
	if err != nil {
		return err
	}
	doc, err := decodeDocument(in, format)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	res := apply(filter, doc)
	if err := writeResult(out, res); err != nil {
		return err
	}
	if res.err != nil {
		return fmt.Errorf("filter %s: %w", name, res.err)
	}
	return nil
}

// buildFilter loads the rules file, then lets the flags given on the command line override it.
func buildFilter(cmd *cobra.Command, flags *rootFlags) (*paramfilter.ParamFilter, error) {
	filter := paramfilter.New()
	if flags.config != "" {
		rules, err := loadRules(flags.config)
		if err != nil {
			return nil, err
		}
		filter.SetRequired(rules.Required...).
			SetAccepted(rules.Accepted...).
			SetExcluded(rules.Excluded...).
			SetDebug(rules.Debug)
	}

	changed := cmd.Flags().Changed
	if changed("required") {
		filter.SetRequired(str.TrimEmpty(flags.required)...)
	}
	if changed("accepted") {
		filter.SetAccepted(str.TrimEmpty(flags.accepted)...)
	}
	if changed("excluded") {
		filter.SetExcluded(str.TrimEmpty(flags.excluded)...)
	}
	if changed("debug") {
		filter.SetDebug(flags.debug)
	}
	if flags.acceptAll {
		filter.AcceptAll()
	}
	return filter, nil
}

func detectFormat(format, name string) (string, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case formatAuto, "":
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			return formatYAML, nil
		default:
			return formatJSON, nil
		}
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func discardLogger() types.Logger {
	return log.New(io.Discard, "", 0)
}
