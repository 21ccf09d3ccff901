// Package base64chunk encodes audio blobs for JSON transport and decodes
// them on the receiving side in fixed-size chunks, so large payloads never
// require a single contiguous decode buffer.
package base64chunk

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// ChunkSize is the number of base64 characters decoded per step. It is a
// multiple of 4, so every chunk boundary falls on a whole encoded group.
const ChunkSize = 32768

func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode converts a base64 string back to bytes, processing the input in
// ChunkSize slices and concatenating the decoded chunks in order.
func Decode(encoded string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(base64.StdEncoding.DecodedLen(len(encoded)))

	for position := 0; position < len(encoded); position += ChunkSize {
		end := position + ChunkSize
		if end > len(encoded) {
			end = len(encoded)
		}

		chunk, err := base64.StdEncoding.DecodeString(encoded[position:end])
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 chunk at offset %d: %w", position, err)
		}
		buf.Write(chunk)
	}

	return buf.Bytes(), nil
}
