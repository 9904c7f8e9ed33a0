// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command duckdb-arrow-schema prints the DuckDB column types that arrow
// schemas map to. Schemas are read from arrow IPC, Parquet, Avro schema
// and CSV files, or fetched from an arrow Flight service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/chenxi8611/duckdb-wasm/duckarrow"
	"github.com/chenxi8611/duckdb-wasm/internal/schemasrc"
	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const usage = `DuckDB Arrow Schema Mapper.
Usage:
  duckdb-arrow-schema -h | --help
  duckdb-arrow-schema [options] <source>...
  duckdb-arrow-schema [options] --flight=ADDR <path>...
Options:
  -h --help              Show this screen.
  --format=FORMAT        Source format: auto, ipc, parquet, avro or csv [default: auto]
  --max-depth=N          Nesting ceiling for mapped types [default: 64]
  --dictionary-values    Map dictionaries to their value type.
  --json                 Format output as JSON instead of text.
  -v --verbose           Enable debug logging.`

type config struct {
	Sources          []string
	Flight           string
	Format           schemasrc.Format
	MaxDepth         int
	DictionaryValues bool
	JSON             bool
	Verbose          bool
}

func parseArgs(argv []string, help func(error, string)) (config, error) {
	var cfg config

	p := &docopt.Parser{HelpHandler: help}
	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return cfg, err
	}

	format, err := opts.String("--format")
	if err != nil {
		return cfg, err
	}
	if cfg.Format, err = schemasrc.ParseFormat(format); err != nil {
		return cfg, err
	}
	if cfg.MaxDepth, err = opts.Int("--max-depth"); err != nil {
		return cfg, fmt.Errorf("--max-depth: %w", err)
	}
	cfg.DictionaryValues, _ = opts.Bool("--dictionary-values")
	cfg.JSON, _ = opts.Bool("--json")
	cfg.Verbose, _ = opts.Bool("--verbose")

	if addr, ok := opts["--flight"].(string); ok && addr != "" {
		cfg.Flight = addr
		cfg.Sources, _ = opts["<path>"].([]string)
	} else {
		cfg.Sources, _ = opts["<source>"].([]string)
	}
	if len(cfg.Sources) == 0 {
		return cfg, fmt.Errorf("%w: no schema sources given", arrow.ErrInvalid)
	}
	return cfg, nil
}

type result struct {
	Source  string            `json:"source"`
	Columns duckarrow.Columns `json:"columns"`
}

func (cfg config) sourceName(src string) string {
	if cfg.Flight != "" {
		return cfg.Flight + "/" + strings.Trim(src, "/")
	}
	return src
}

func (cfg config) load(ctx context.Context, src string, mem memory.Allocator) (*arrow.Schema, error) {
	if cfg.Flight != "" {
		return schemasrc.FromFlight(ctx, cfg.Flight, schemasrc.FlightPath(src), mem)
	}
	return schemasrc.Open(ctx, schemasrc.Source{Path: src, Format: cfg.Format}, mem)
}

func run(ctx context.Context, stdout, stderr io.Writer, cfg config, mem memory.Allocator) error {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	mapper := duckarrow.NewMapper(
		duckarrow.WithMaxDepth(cfg.MaxDepth),
		duckarrow.WithDictionaryValues(cfg.DictionaryValues),
		duckarrow.WithLogger(logger),
	)

	results := make([]result, len(cfg.Sources))
	grp, gctx := errgroup.WithContext(ctx)
	for i, src := range cfg.Sources {
		i, src := i, src
		grp.Go(func() error {
			sc, err := cfg.load(gctx, src, mem)
			if err != nil {
				return err
			}
			cols, err := mapper.MapSchema(sc)
			if err != nil {
				return fmt.Errorf("%s: %w", cfg.sourceName(src), err)
			}
			results[i] = result{Source: cfg.sourceName(src), Columns: cols}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(stdout, "source: %s\n", r.Source)
		for _, c := range r.Columns {
			fmt.Fprintf(stdout, "  %s\n", c)
		}
	}
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:], docopt.PrintHelpAndExit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := run(context.Background(), os.Stdout, os.Stderr, cfg, memory.DefaultAllocator); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
