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

import "strings"

// ListType is a variable-length list of Elem values.
type ListType struct {
	elem LogicalType
}

// ListOf returns a LIST type with the given element type. It panics if
// elem is nil.
func ListOf(elem LogicalType) *ListType {
	if elem == nil {
		panic("duckdb: nil list element type")
	}
	return &ListType{elem: elem}
}

func (*ListType) ID() Type            { return LIST }
func (*ListType) Name() string        { return "LIST" }
func (t *ListType) String() string    { return t.elem.String() + "[]" }
func (t *ListType) Elem() LogicalType { return t.elem }

// StructType is an ordered set of named children. Names are not
// deduplicated.
type StructType struct {
	children []Child
}

// StructOf returns a STRUCT type holding children in the given order.
// It panics if a child has no type.
func StructOf(children ...Child) *StructType {
	return &StructType{children: copyChildren(children)}
}

func (*StructType) ID() Type            { return STRUCT }
func (*StructType) Name() string        { return "STRUCT" }
func (t *StructType) String() string    { return "STRUCT(" + childList(t.children) + ")" }
func (t *StructType) Children() []Child { return t.children }
func (t *StructType) Child(i int) Child { return t.children[i] }
func (t *StructType) NumChildren() int  { return len(t.children) }

// MapType holds an ordered set of named children, like StructType.
// Arrow maps arrive here as their single "entries" child, and arrow
// dictionaries as their "values" and "indices" children.
type MapType struct {
	children []Child
}

// MapOf returns a MAP type holding children in the given order. It
// panics if a child has no type.
func MapOf(children ...Child) *MapType {
	return &MapType{children: copyChildren(children)}
}

func (*MapType) ID() Type            { return MAP }
func (*MapType) Name() string        { return "MAP" }
func (t *MapType) String() string    { return "MAP(" + childList(t.children) + ")" }
func (t *MapType) Children() []Child { return t.children }
func (t *MapType) Child(i int) Child { return t.children[i] }
func (t *MapType) NumChildren() int  { return len(t.children) }

func copyChildren(children []Child) []Child {
	if len(children) == 0 {
		return nil
	}
	out := make([]Child, len(children))
	for i, c := range children {
		if c.Type == nil {
			panic("duckdb: nil type for child " + QuoteIdent(c.Name))
		}
		out[i] = c
	}
	return out
}

func childList(children []Child) string {
	var b strings.Builder
	for i, c := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}
