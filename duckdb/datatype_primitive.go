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

import "strconv"

// PrimitiveType is a parameterless logical type. The values in
// PrimitiveTypes are the only instances needed; a zero PrimitiveType is
// INVALID.
type PrimitiveType struct {
	id Type
}

func (t *PrimitiveType) ID() Type       { return t.id }
func (t *PrimitiveType) Name() string   { return t.id.String() }
func (t *PrimitiveType) String() string { return t.id.String() }

var (
	PrimitiveTypes = struct {
		Invalid   LogicalType
		Boolean   LogicalType
		TinyInt   LogicalType
		SmallInt  LogicalType
		Integer   LogicalType
		BigInt    LogicalType
		UTinyInt  LogicalType
		USmallInt LogicalType
		UInteger  LogicalType
		UBigInt   LogicalType
		Float     LogicalType
		Double    LogicalType
		Varchar   LogicalType
		Blob      LogicalType
		Date      LogicalType
		Timestamp LogicalType
		Time      LogicalType
		Interval  LogicalType
	}{
		Invalid:   &PrimitiveType{id: INVALID},
		Boolean:   &PrimitiveType{id: BOOLEAN},
		TinyInt:   &PrimitiveType{id: TINYINT},
		SmallInt:  &PrimitiveType{id: SMALLINT},
		Integer:   &PrimitiveType{id: INTEGER},
		BigInt:    &PrimitiveType{id: BIGINT},
		UTinyInt:  &PrimitiveType{id: UTINYINT},
		USmallInt: &PrimitiveType{id: USMALLINT},
		UInteger:  &PrimitiveType{id: UINTEGER},
		UBigInt:   &PrimitiveType{id: UBIGINT},
		Float:     &PrimitiveType{id: FLOAT},
		Double:    &PrimitiveType{id: DOUBLE},
		Varchar:   &PrimitiveType{id: VARCHAR},
		Blob:      &PrimitiveType{id: BLOB},
		Date:      &PrimitiveType{id: DATE},
		Timestamp: &PrimitiveType{id: TIMESTAMP},
		Time:      &PrimitiveType{id: TIME},
		Interval:  &PrimitiveType{id: INTERVAL},
	}
)

// DecimalType is a fixed point number. Precision and Scale are kept as
// given, even outside the range DuckDB itself can store.
type DecimalType struct {
	Precision int32
	Scale     int32
}

// DecimalOf returns a DECIMAL(precision, scale) type.
func DecimalOf(precision, scale int32) *DecimalType {
	return &DecimalType{Precision: precision, Scale: scale}
}

func (*DecimalType) ID() Type     { return DECIMAL }
func (*DecimalType) Name() string { return "DECIMAL" }
func (t *DecimalType) String() string {
	return "DECIMAL(" + strconv.Itoa(int(t.Precision)) + "," + strconv.Itoa(int(t.Scale)) + ")"
}
