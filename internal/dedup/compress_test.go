// Copyright 2025 James Ross
package dedup

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestCompressedRecordWriterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCompressedRecordWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, cw.WriteRecord("text", "hello"))
	require.NoError(t, cw.WriteRecord("text", "world"))
	require.NoError(t, cw.Close())

	dec, err := zstd.NewReader(&buf)
	require.NoError(t, err)
	defer dec.Close()

	var lines []map[string]any
	jd := json.NewDecoder(dec)
	for {
		var row map[string]any
		if err := jd.Decode(&row); err != nil {
			break
		}
		lines = append(lines, row)
	}
	require.Len(t, lines, 2)
	require.Equal(t, "hello", lines[0]["text"])
	require.Equal(t, "world", lines[1]["text"])
}
