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

// TypeEqual checks if two LogicalType are the same: same ids, same
// decimal parameters, and for nested types the same children with the
// same names in the same order.
func TypeEqual(left, right LogicalType) bool {
	switch {
	case left == nil || right == nil:
		return left == nil && right == nil
	case left.ID() != right.ID():
		return false
	}

	switch l := left.(type) {
	case *DecimalType:
		r, ok := right.(*DecimalType)
		return ok && l.Precision == r.Precision && l.Scale == r.Scale
	case *ListType:
		r, ok := right.(*ListType)
		return ok && TypeEqual(l.Elem(), r.Elem())
	case NestedType:
		r, ok := right.(NestedType)
		return ok && childrenEqual(l.Children(), r.Children())
	default:
		return true
	}
}

func childrenEqual(left, right []Child) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i].Name != right[i].Name || !TypeEqual(left[i].Type, right[i].Type) {
			return false
		}
	}
	return true
}
