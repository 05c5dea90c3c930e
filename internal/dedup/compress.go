// Copyright 2025 James Ross
package dedup

import (
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
)

// CompressedRecordWriter streams kept records out as zstd-compressed
// newline-delimited JSON, for batch runs where the surviving corpus is
// archived rather than piped to another process. Adapted from the
// teacher's ZstdCompressor, trimmed to the one-way encode path this
// pipeline's output stage needs.
type CompressedRecordWriter struct {
	enc *zstd.Encoder
	jw  *json.Encoder
}

// NewCompressedRecordWriter wraps w in a zstd encoder at the default speed
// level, matching the teacher's SpeedDefault fallback for untuned callers.
func NewCompressedRecordWriter(w io.Writer) (*CompressedRecordWriter, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, NewResourceError(err, "could not initialize zstd encoder")
	}
	return &CompressedRecordWriter{enc: enc, jw: json.NewEncoder(enc)}, nil
}

// WriteRecord encodes one record under the given column name.
func (c *CompressedRecordWriter) WriteRecord(column, content string) error {
	return c.jw.Encode(map[string]any{column: content})
}

// Close flushes and closes the underlying zstd stream.
func (c *CompressedRecordWriter) Close() error {
	return c.enc.Close()
}
