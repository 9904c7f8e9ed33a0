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

package duckarrow

import "github.com/rs/zerolog"

// DefaultMaxDepth matches the nesting limit arrow IPC readers enforce.
const DefaultMaxDepth = 64

type config struct {
	maxDepth   int
	logger     zerolog.Logger
	dictValues bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Mapper.
type Option func(*config)

// WithMaxDepth sets how many container levels a type may nest before
// mapping fails with ErrNestingTooDeep. Values below 1 keep
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(cfg *config) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		cfg.maxDepth = n
	}
}

// WithLogger sets the logger receiving debug events for approximate
// mappings. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithDictionaryValues maps a dictionary type to the mapping of its value
// type instead of a MAP of its values and indices.
func WithDictionaryValues(v bool) Option {
	return func(cfg *config) {
		cfg.dictValues = v
	}
}
