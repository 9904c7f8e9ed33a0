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

/*
Package duckdb describes DuckDB logical column types.

The package mirrors the DuckDB LogicalType: a Type id plus, for DECIMAL,
LIST, STRUCT and MAP, the parameters or children that complete it.
Parameterless types are shared values in PrimitiveTypes:

	duckdb.PrimitiveTypes.Integer.String()            // INTEGER
	duckdb.DecimalOf(38, 10).String()                 // DECIMAL(38,10)
	duckdb.ListOf(duckdb.PrimitiveTypes.Double)       // DOUBLE[]
	duckdb.StructOf(duckdb.Child{Name: "a", Type: duckdb.PrimitiveTypes.Integer})

Values are immutable once built and safe to share between goroutines.
*/
package duckdb
