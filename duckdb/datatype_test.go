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

package duckdb_test

import (
	"testing"

	"github.com/chenxi8611/duckdb-wasm/duckdb"
	"github.com/stretchr/testify/assert"
)

func TestPrimitiveTypes(t *testing.T) {
	for _, tc := range []struct {
		typ  duckdb.LogicalType
		id   duckdb.Type
		want string
	}{
		{duckdb.PrimitiveTypes.Invalid, duckdb.INVALID, "INVALID"},
		{duckdb.PrimitiveTypes.Boolean, duckdb.BOOLEAN, "BOOLEAN"},
		{duckdb.PrimitiveTypes.TinyInt, duckdb.TINYINT, "TINYINT"},
		{duckdb.PrimitiveTypes.SmallInt, duckdb.SMALLINT, "SMALLINT"},
		{duckdb.PrimitiveTypes.Integer, duckdb.INTEGER, "INTEGER"},
		{duckdb.PrimitiveTypes.BigInt, duckdb.BIGINT, "BIGINT"},
		{duckdb.PrimitiveTypes.UTinyInt, duckdb.UTINYINT, "UTINYINT"},
		{duckdb.PrimitiveTypes.USmallInt, duckdb.USMALLINT, "USMALLINT"},
		{duckdb.PrimitiveTypes.UInteger, duckdb.UINTEGER, "UINTEGER"},
		{duckdb.PrimitiveTypes.UBigInt, duckdb.UBIGINT, "UBIGINT"},
		{duckdb.PrimitiveTypes.Float, duckdb.FLOAT, "FLOAT"},
		{duckdb.PrimitiveTypes.Double, duckdb.DOUBLE, "DOUBLE"},
		{duckdb.PrimitiveTypes.Varchar, duckdb.VARCHAR, "VARCHAR"},
		{duckdb.PrimitiveTypes.Blob, duckdb.BLOB, "BLOB"},
		{duckdb.PrimitiveTypes.Date, duckdb.DATE, "DATE"},
		{duckdb.PrimitiveTypes.Timestamp, duckdb.TIMESTAMP, "TIMESTAMP"},
		{duckdb.PrimitiveTypes.Time, duckdb.TIME, "TIME"},
		{duckdb.PrimitiveTypes.Interval, duckdb.INTERVAL, "INTERVAL"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.id, tc.typ.ID())
			assert.Equal(t, tc.want, tc.typ.Name())
			assert.Equal(t, tc.want, tc.typ.String())
		})
	}
}

func TestTypeStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Type(-1)", duckdb.Type(-1).String())
	assert.Equal(t, "Type(99)", duckdb.Type(99).String())
}

func TestDecimalOf(t *testing.T) {
	for _, tc := range []struct {
		precision, scale int32
		want             string
	}{
		{1, 0, "DECIMAL(1,0)"},
		{18, 3, "DECIMAL(18,3)"},
		{38, 10, "DECIMAL(38,10)"},
		// wider than DuckDB can store, kept verbatim
		{76, 40, "DECIMAL(76,40)"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			dt := duckdb.DecimalOf(tc.precision, tc.scale)
			assert.Equal(t, duckdb.DECIMAL, dt.ID())
			assert.Equal(t, "DECIMAL", dt.Name())
			assert.Equal(t, tc.precision, dt.Precision)
			assert.Equal(t, tc.scale, dt.Scale)
			assert.Equal(t, tc.want, dt.String())
		})
	}
}

func TestListOf(t *testing.T) {
	lt := duckdb.ListOf(duckdb.PrimitiveTypes.Double)
	assert.Equal(t, duckdb.LIST, lt.ID())
	assert.Equal(t, "LIST", lt.Name())
	assert.Same(t, duckdb.PrimitiveTypes.Double, lt.Elem())
	assert.Equal(t, "DOUBLE[]", lt.String())

	nested := duckdb.ListOf(duckdb.ListOf(duckdb.DecimalOf(10, 2)))
	assert.Equal(t, "DECIMAL(10,2)[][]", nested.String())

	assert.Panics(t, func() { duckdb.ListOf(nil) })
}

func TestStructOf(t *testing.T) {
	st := duckdb.StructOf(
		duckdb.Child{Name: "a", Type: duckdb.PrimitiveTypes.Integer},
		duckdb.Child{Name: "b", Type: duckdb.PrimitiveTypes.Varchar},
		duckdb.Child{Name: "a", Type: duckdb.PrimitiveTypes.Blob},
	)
	assert.Equal(t, duckdb.STRUCT, st.ID())
	assert.Equal(t, 3, st.NumChildren())
	assert.Equal(t, []string{"a", "b", "a"}, childNames(st.Children()))
	assert.Equal(t, "STRUCT(a INTEGER, b VARCHAR, a BLOB)", st.String())

	assert.Equal(t, "STRUCT()", duckdb.StructOf().String())
	assert.Panics(t, func() { duckdb.StructOf(duckdb.Child{Name: "x"}) })
}

func TestStructOfCopiesChildren(t *testing.T) {
	children := []duckdb.Child{{Name: "a", Type: duckdb.PrimitiveTypes.Integer}}
	st := duckdb.StructOf(children...)
	children[0].Name = "changed"
	assert.Equal(t, "a", st.Child(0).Name)
}

func TestMapOf(t *testing.T) {
	mt := duckdb.MapOf(
		duckdb.Child{Name: "values", Type: duckdb.PrimitiveTypes.Varchar},
		duckdb.Child{Name: "indices", Type: duckdb.PrimitiveTypes.Integer},
	)
	assert.Equal(t, duckdb.MAP, mt.ID())
	assert.Equal(t, "MAP", mt.Name())
	assert.Equal(t, 2, mt.NumChildren())
	assert.Equal(t, "MAP(values VARCHAR, indices INTEGER)", mt.String())
}

func TestIdentifierQuoting(t *testing.T) {
	for _, tc := range []struct {
		name string
		want string
	}{
		{"plain", "STRUCT(plain INTEGER)"},
		{"snake_case_1", "STRUCT(snake_case_1 INTEGER)"},
		{"Upper", `STRUCT("Upper" INTEGER)`},
		{"with space", `STRUCT("with space" INTEGER)`},
		{"1st", `STRUCT("1st" INTEGER)`},
		{"", `STRUCT("" INTEGER)`},
		{`say "hi"`, `STRUCT("say ""hi""" INTEGER)`},
		{"order", `STRUCT("order" INTEGER)`},
		{"select", `STRUCT("select" INTEGER)`},
		{"pivot_wider", `STRUCT("pivot_wider" INTEGER)`},
		{"orders", "STRUCT(orders INTEGER)"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			st := duckdb.StructOf(duckdb.Child{Name: tc.name, Type: duckdb.PrimitiveTypes.Integer})
			assert.Equal(t, tc.want, st.String())
		})
	}
}

func childNames(children []duckdb.Child) []string {
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = c.Name
	}
	return names
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "city", duckdb.QuoteIdent("city"))
	assert.Equal(t, `"Mixed Case"`, duckdb.QuoteIdent("Mixed Case"))
	assert.Equal(t, `"group"`, duckdb.QuoteIdent("group"))
	assert.Equal(t, `"GROUP"`, duckdb.QuoteIdent("GROUP"))
}
