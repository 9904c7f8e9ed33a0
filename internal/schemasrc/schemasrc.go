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

// Package schemasrc loads arrow schemas from the places arrow data
// usually comes from: IPC files and streams, Parquet files, Avro schema
// documents, CSV files and Flight services.
package schemasrc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	arrowavro "github.com/apache/arrow/go/v17/arrow/avro"
	"github.com/apache/arrow/go/v17/arrow/csv"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
	"github.com/hamba/avro/v2"
	"github.com/rs/zerolog"
)

// Format is the encoding of a schema source.
type Format int

const (
	// FormatAuto picks the format from the file extension, falling back to
	// arrow IPC.
	FormatAuto Format = iota
	FormatIPC
	FormatParquet
	FormatAvro
	FormatCSV
)

var formatNames = [...]string{"auto", "ipc", "parquet", "avro", "csv"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return FormatAuto, fmt.Errorf("%w: unknown schema source format %q", arrow.ErrInvalid, s)
}

// CSVInferRows is the number of CSV rows read to infer column types.
const CSVInferRows = 1000

// Source is a schema-bearing file.
type Source struct {
	Path   string
	Format Format
}

func (s Source) format() Format {
	if s.Format != FormatAuto {
		return s.Format
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".parquet", ".pq":
		return FormatParquet
	case ".avsc":
		return FormatAvro
	case ".csv":
		return FormatCSV
	default:
		return FormatIPC
	}
}

// Open reads the arrow schema of src. mem is used for any buffers the
// underlying readers need. A logger attached to ctx with
// zerolog.Logger.WithContext receives debug events.
func Open(ctx context.Context, src Source, mem memory.Allocator) (*arrow.Schema, error) {
	format := src.format()
	zerolog.Ctx(ctx).Debug().
		Str("path", src.Path).
		Stringer("format", format).
		Msg("reading schema")

	var (
		sc  *arrow.Schema
		err error
	)
	switch format {
	case FormatIPC:
		sc, err = readIPC(src.Path, mem)
	case FormatParquet:
		sc, err = readParquet(src.Path)
	case FormatAvro:
		sc, err = readAvro(src.Path)
	case FormatCSV:
		sc, err = readCSV(src.Path, mem)
	default:
		err = fmt.Errorf("%w: unknown schema source format %s", arrow.ErrInvalid, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}
	return sc, nil
}

// readIPC accepts both the arrow file format and a bare IPC stream.
func readIPC(path string, mem memory.Allocator) (*arrow.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdr := make([]byte, len(ipc.Magic))
	if _, err := io.ReadFull(f, hdr); err != nil {
		return nil, fmt.Errorf("could not read file header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if !bytes.Equal(hdr, ipc.Magic) {
		r, err := ipc.NewReader(f, ipc.WithAllocator(mem))
		if err != nil {
			return nil, err
		}
		defer r.Release()
		return r.Schema(), nil
	}

	r, err := ipc.NewFileReader(f, ipc.WithAllocator(mem))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Schema(), nil
}

// readParquet restores the stored arrow schema when the writer kept one
// and otherwise derives it from the parquet schema.
func readParquet(path string) (*arrow.Schema, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	md := rdr.MetaData()
	return pqarrow.FromParquet(md.Schema, &pqarrow.ArrowReadProperties{}, md.KeyValueMetadata())
}

func readAvro(path string) (*arrow.Schema, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	schema, err := avro.Parse(string(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid avro schema: %s", arrow.ErrInvalid, err)
	}
	return arrowavro.ArrowSchemaFromAvro(schema)
}

func readCSV(path string, mem memory.Allocator) (*arrow.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewInferringReader(f,
		csv.WithHeader(true),
		csv.WithChunk(CSVInferRows),
		csv.WithAllocator(mem))
	defer r.Release()

	if !r.Next() {
		if err := r.Err(); err != nil {
			return nil, err
		}
	}
	sc := r.Schema()
	if sc == nil {
		return nil, fmt.Errorf("%w: no csv rows to infer a schema from", arrow.ErrInvalid)
	}
	return sc, nil
}
