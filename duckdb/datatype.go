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

package duckdb

//go:generate stringer -type=Type -linecomment

// Type is a DuckDB logical type id. The parameterless ids each have a
// single LogicalType value in PrimitiveTypes; DECIMAL, LIST, STRUCT and
// MAP carry extra information and are built with DecimalOf, ListOf,
// StructOf and MapOf.
type Type int

const (
	// INVALID marks a column with no concrete type, such as an arrow null
	// column.
	INVALID Type = iota // INVALID

	BOOLEAN // BOOLEAN

	// TINYINT is a signed 1-byte integer
	TINYINT // TINYINT

	// SMALLINT is a signed 2-byte integer
	SMALLINT // SMALLINT

	// INTEGER is a signed 4-byte integer
	INTEGER // INTEGER

	// BIGINT is a signed 8-byte integer
	BIGINT // BIGINT

	// UTINYINT is an unsigned 1-byte integer
	UTINYINT // UTINYINT

	// USMALLINT is an unsigned 2-byte integer
	USMALLINT // USMALLINT

	// UINTEGER is an unsigned 4-byte integer
	UINTEGER // UINTEGER

	// UBIGINT is an unsigned 8-byte integer
	UBIGINT // UBIGINT

	// FLOAT is a single precision floating point number
	FLOAT // FLOAT

	// DOUBLE is a double precision floating point number
	DOUBLE // DOUBLE

	// VARCHAR is a variable-length UTF8 string
	VARCHAR // VARCHAR

	// BLOB is a variable-length byte string
	BLOB // BLOB

	DATE      // DATE
	TIMESTAMP // TIMESTAMP

	// TIME is a time of day
	TIME // TIME

	INTERVAL // INTERVAL

	// DECIMAL is a fixed point number with a precision and a scale
	DECIMAL // DECIMAL

	// LIST is a variable-length list of a single child type
	LIST // LIST

	// STRUCT is an ordered set of named children
	STRUCT // STRUCT

	// MAP is an ordered set of named children, laid out like STRUCT
	MAP // MAP
)

// LogicalType is the representation of a DuckDB column type.
type LogicalType interface {
	ID() Type
	// Name is the SQL keyword of the type id.
	Name() string
	// String renders the full SQL type text, including parameters and
	// children.
	String() string
}

// NestedType is a LogicalType holding named children.
type NestedType interface {
	LogicalType
	Children() []Child
}

// Child is a named member of a STRUCT or MAP type.
type Child struct {
	Name string
	Type LogicalType
}

func (c Child) String() string { return QuoteIdent(c.Name) + " " + c.Type.String() }
