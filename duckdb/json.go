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

import "github.com/goccy/go-json"

type jsonChild struct {
	Name string      `json:"name"`
	Type LogicalType `json:"type"`
}

func (t *PrimitiveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID string `json:"id"`
	}{t.id.String()})
}

func (t *DecimalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Precision int32  `json:"precision"`
		Scale     int32  `json:"scale"`
	}{DECIMAL.String(), t.Precision, t.Scale})
}

func (t *ListType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string      `json:"id"`
		Elem LogicalType `json:"elem"`
	}{LIST.String(), t.elem})
}

func (t *StructType) MarshalJSON() ([]byte, error) {
	return marshalNested(STRUCT, t.children)
}

func (t *MapType) MarshalJSON() ([]byte, error) {
	return marshalNested(MAP, t.children)
}

func marshalNested(id Type, children []Child) ([]byte, error) {
	out := struct {
		ID       string      `json:"id"`
		Children []jsonChild `json:"children"`
	}{ID: id.String(), Children: make([]jsonChild, len(children))}
	for i, c := range children {
		out.Children[i] = jsonChild{Name: c.Name, Type: c.Type}
	}
	return json.Marshal(out)
}
