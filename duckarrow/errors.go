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

import (
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
)

var (
	// ErrUnsupported is returned for arrow types that have no DuckDB
	// counterpart: extension and union types.
	ErrUnsupported = fmt.Errorf("%w: duckdb type mapping", arrow.ErrNotImplemented)
	// ErrNestingTooDeep is returned when a type nests more containers than
	// the mapper's maximum depth.
	ErrNestingTooDeep = fmt.Errorf("%w: type nesting too deep", arrow.ErrInvalid)
)

func unsupported(dt arrow.DataType) error {
	return fmt.Errorf("%w for: %s", ErrUnsupported, dt)
}

func tooDeep(dt arrow.DataType, max int) error {
	return fmt.Errorf("%w: %s exceeds max depth %d", ErrNestingTooDeep, dt.Name(), max)
}

// IsUnsupported reports whether err comes from an arrow type with no
// DuckDB mapping.
func IsUnsupported(err error) bool { return errors.Is(err, ErrUnsupported) }
