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

package schemasrc

import (
	"context"
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/flight"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// FlightPath splits a slash separated descriptor path.
func FlightPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

// FromFlight asks the Flight service at addr for the schema of the
// dataset identified by a PATH descriptor.
func FromFlight(ctx context.Context, addr string, path []string, mem memory.Allocator) (*arrow.Schema, error) {
	zerolog.Ctx(ctx).Debug().
		Str("addr", addr).
		Strs("path", path).
		Msg("fetching flight schema")

	client, err := flight.NewClientWithMiddleware(addr, nil, nil,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", addr, err)
	}
	defer client.Close()

	res, err := client.GetSchema(ctx, &flight.FlightDescriptor{
		Type: flight.DescriptorPATH,
		Path: path,
	})
	if err != nil {
		return nil, fmt.Errorf("flight %s %s: %w", addr, strings.Join(path, "/"), err)
	}

	return flight.DeserializeSchema(res.GetSchema(), mem)
}
