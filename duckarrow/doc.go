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
Package duckarrow converts arrow data types and schemas to DuckDB logical
types, so that arrow data can be registered with DuckDB without a
separate schema definition.

The mapping follows the arrow type id:

	NULL                                   INVALID
	BOOL                                   BOOLEAN
	INT8/16/32/64, UINT8/16/32/64          TINYINT .. BIGINT, UTINYINT .. UBIGINT
	FLOAT16, FLOAT32                       FLOAT
	FLOAT64                                DOUBLE
	STRING, LARGE_STRING, STRING_VIEW      VARCHAR
	BINARY, LARGE_BINARY,
	FIXED_SIZE_BINARY, BINARY_VIEW         BLOB
	DATE32, DATE64                         DATE
	TIMESTAMP                              TIMESTAMP
	TIME32, TIME64                         TIMESTAMP (approximate)
	DURATION                               TIME (approximate)
	INTERVAL_*                             INTERVAL
	DECIMAL128, DECIMAL256                 DECIMAL(precision, scale)
	LIST, LARGE_LIST, FIXED_SIZE_LIST,
	LIST_VIEW, LARGE_LIST_VIEW             LIST(elem)
	STRUCT                                 STRUCT(fields...)
	MAP                                    MAP(entries)
	DICTIONARY                             MAP(values, indices)
	RUN_END_ENCODED                        mapping of the values type
	EXTENSION, SPARSE_UNION, DENSE_UNION   ErrUnsupported
	unknown ids                            INVALID

Decimal precision and scale, field names and field order are copied
without change. Nested types are mapped child first; the first child that
fails determines the error of the whole call and no partial type is
returned.

Mapping recurses at most WithMaxDepth levels (DefaultMaxDepth unless
configured) and fails with ErrNestingTooDeep beyond that.
*/
package duckarrow
