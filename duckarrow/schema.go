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
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/chenxi8611/duckdb-wasm/duckdb"
)

// Column is a mapped top-level arrow field.
type Column struct {
	Name     string             `json:"name"`
	Type     duckdb.LogicalType `json:"type"`
	Nullable bool               `json:"nullable"`
}

// String renders the column as it would appear in a DuckDB column
// definition list.
func (c Column) String() string {
	s := duckdb.QuoteIdent(c.Name) + " " + c.Type.String()
	if !c.Nullable {
		s += " NOT NULL"
	}
	return s
}

// Columns is the mapped form of an arrow schema, in schema order.
type Columns []Column

func (cs Columns) String() string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Names returns the column names in order.
func (cs Columns) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

// MapField maps a single arrow field, keeping its name and nullability.
func (m *Mapper) MapField(f arrow.Field) (Column, error) {
	typ, err := m.MapType(f.Type)
	if err != nil {
		return Column{}, fmt.Errorf("column %q: %w", f.Name, err)
	}
	return Column{Name: f.Name, Type: typ, Nullable: f.Nullable}, nil
}

// MapSchema maps every field of sc. It stops at the first field that
// fails to map.
func (m *Mapper) MapSchema(sc *arrow.Schema) (Columns, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil arrow schema", arrow.ErrInvalid)
	}

	cols := make(Columns, sc.NumFields())
	for i, f := range sc.Fields() {
		col, err := m.MapField(f)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

// FromArrowField maps f using the default options.
func FromArrowField(f arrow.Field) (Column, error) {
	return defaultMapper.MapField(f)
}

// FromArrowSchema maps sc using the default options.
func FromArrowSchema(sc *arrow.Schema) (Columns, error) {
	return defaultMapper.MapSchema(sc)
}
