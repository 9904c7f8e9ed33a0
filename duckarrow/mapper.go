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

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/chenxi8611/duckdb-wasm/duckdb"
)

// Mapper converts arrow data types to DuckDB logical types. A Mapper
// holds no state besides its options and is safe for concurrent use.
type Mapper struct {
	cfg config
}

// NewMapper returns a Mapper configured with opts.
func NewMapper(opts ...Option) *Mapper {
	return &Mapper{cfg: newConfig(opts...)}
}

var defaultMapper = NewMapper()

// FromArrow maps dt to its DuckDB logical type using the default options.
//
// Every arrow type id has a mapping except EXTENSION, SPARSE_UNION and
// DENSE_UNION, which fail with ErrUnsupported. The NULL type and ids
// this package does not know map to INVALID. Nested types are mapped child first and the first failing
// child fails the whole call.
func FromArrow(dt arrow.DataType) (duckdb.LogicalType, error) {
	return defaultMapper.MapType(dt)
}

// MapType maps dt to its DuckDB logical type. See FromArrow.
func (m *Mapper) MapType(dt arrow.DataType) (duckdb.LogicalType, error) {
	return m.mapType(dt, 0)
}

func (m *Mapper) mapType(dt arrow.DataType, depth int) (duckdb.LogicalType, error) {
	if dt == nil {
		return nil, fmt.Errorf("%w: nil arrow data type", arrow.ErrInvalid)
	}
	if depth > m.cfg.maxDepth {
		return nil, tooDeep(dt, m.cfg.maxDepth)
	}

	switch dt.ID() {
	case arrow.NULL:
		return duckdb.PrimitiveTypes.Invalid, nil
	case arrow.BOOL:
		return duckdb.PrimitiveTypes.Boolean, nil
	case arrow.UINT8:
		return duckdb.PrimitiveTypes.UTinyInt, nil
	case arrow.INT8:
		return duckdb.PrimitiveTypes.TinyInt, nil
	case arrow.UINT16:
		return duckdb.PrimitiveTypes.USmallInt, nil
	case arrow.INT16:
		return duckdb.PrimitiveTypes.SmallInt, nil
	case arrow.UINT32:
		return duckdb.PrimitiveTypes.UInteger, nil
	case arrow.INT32:
		return duckdb.PrimitiveTypes.Integer, nil
	case arrow.UINT64:
		return duckdb.PrimitiveTypes.UBigInt, nil
	case arrow.INT64:
		return duckdb.PrimitiveTypes.BigInt, nil
	case arrow.FLOAT16:
		return m.approximate(dt, duckdb.PrimitiveTypes.Float), nil
	case arrow.FLOAT32:
		return duckdb.PrimitiveTypes.Float, nil
	case arrow.FLOAT64:
		return duckdb.PrimitiveTypes.Double, nil
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return duckdb.PrimitiveTypes.Varchar, nil
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY, arrow.BINARY_VIEW:
		return duckdb.PrimitiveTypes.Blob, nil
	case arrow.DATE32, arrow.DATE64:
		return duckdb.PrimitiveTypes.Date, nil
	case arrow.TIMESTAMP:
		return duckdb.PrimitiveTypes.Timestamp, nil
	case arrow.TIME32, arrow.TIME64:
		return m.approximate(dt, duckdb.PrimitiveTypes.Timestamp), nil
	case arrow.DURATION:
		return m.approximate(dt, duckdb.PrimitiveTypes.Time), nil
	case arrow.INTERVAL_MONTHS, arrow.INTERVAL_DAY_TIME, arrow.INTERVAL_MONTH_DAY_NANO:
		return duckdb.PrimitiveTypes.Interval, nil
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return mapDecimal(dt)
	case arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST, arrow.LIST_VIEW, arrow.LARGE_LIST_VIEW:
		return m.mapList(dt, depth)
	case arrow.STRUCT:
		children, err := m.mapNestedFields(dt, depth)
		if err != nil {
			return nil, err
		}
		return duckdb.StructOf(children...), nil
	case arrow.MAP:
		children, err := m.mapNestedFields(dt, depth)
		if err != nil {
			return nil, err
		}
		return duckdb.MapOf(children...), nil
	case arrow.DICTIONARY:
		return m.mapDictionary(dt, depth)
	case arrow.RUN_END_ENCODED:
		enc, ok := dt.(arrow.EncodedType)
		if !ok {
			return nil, payloadMismatch(dt)
		}
		return m.mapType(enc.Encoded(), depth+1)
	case arrow.EXTENSION, arrow.SPARSE_UNION, arrow.DENSE_UNION:
		return nil, unsupported(dt)
	}

	// ids past the end of the enum are placeholders, like NULL
	m.cfg.logger.Debug().
		Int("arrow_type_id", int(dt.ID())).
		Msg("unknown arrow type id mapped to INVALID")
	return duckdb.PrimitiveTypes.Invalid, nil
}

func mapDecimal(dt arrow.DataType) (duckdb.LogicalType, error) {
	switch dt := dt.(type) {
	case *arrow.Decimal128Type:
		return duckdb.DecimalOf(dt.Precision, dt.Scale), nil
	case *arrow.Decimal256Type:
		return duckdb.DecimalOf(dt.Precision, dt.Scale), nil
	}
	return nil, payloadMismatch(dt)
}

func (m *Mapper) mapList(dt arrow.DataType, depth int) (duckdb.LogicalType, error) {
	lt, ok := dt.(arrow.ListLikeType)
	if !ok {
		return nil, payloadMismatch(dt)
	}
	elem, err := m.mapType(lt.Elem(), depth+1)
	if err != nil {
		return nil, err
	}
	return duckdb.ListOf(elem), nil
}

// fieldLister is satisfied by arrow struct and map types.
type fieldLister interface {
	Fields() []arrow.Field
}

func (m *Mapper) mapNestedFields(dt arrow.DataType, depth int) ([]duckdb.Child, error) {
	nt, ok := dt.(fieldLister)
	if !ok {
		return nil, payloadMismatch(dt)
	}
	return m.mapFields(nt.Fields(), depth)
}

func (m *Mapper) mapFields(fields []arrow.Field, depth int) ([]duckdb.Child, error) {
	children := make([]duckdb.Child, len(fields))
	for i, f := range fields {
		typ, err := m.mapType(f.Type, depth+1)
		if err != nil {
			return nil, err
		}
		children[i] = duckdb.Child{Name: f.Name, Type: typ}
	}
	return children, nil
}

// mapDictionary collapses a dictionary into a MAP of its values and
// indices. This keeps neither the dictionary encoding nor key/value map
// semantics; WithDictionaryValues maps to the value type instead.
func (m *Mapper) mapDictionary(dt arrow.DataType, depth int) (duckdb.LogicalType, error) {
	dict, ok := dt.(*arrow.DictionaryType)
	if !ok {
		return nil, payloadMismatch(dt)
	}

	if m.cfg.dictValues {
		return m.mapType(dict.ValueType, depth+1)
	}

	children, err := m.mapFields([]arrow.Field{
		{Name: "values", Type: dict.ValueType},
		{Name: "indices", Type: dict.IndexType},
	}, depth)
	if err != nil {
		return nil, err
	}
	out := duckdb.MapOf(children...)
	m.cfg.logger.Warn().
		Str("arrow_type", fmt.Sprint(dt)).
		Stringer("duckdb_type", out).
		Msg("dictionary mapped to MAP of values and indices")
	return out, nil
}

func (m *Mapper) approximate(dt arrow.DataType, to duckdb.LogicalType) duckdb.LogicalType {
	m.cfg.logger.Debug().
		Str("arrow_type", fmt.Sprint(dt)).
		Stringer("duckdb_type", to).
		Msg("approximate type mapping")
	return to
}

func payloadMismatch(dt arrow.DataType) error {
	return fmt.Errorf("%w: arrow type id %s carried by unexpected go type %T", arrow.ErrInvalid, dt.ID(), dt)
}
