package base64chunk

import (
	"bytes"
	"testing"
)

func sample(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 31)
	}
	return data
}

func TestRoundTripBelowChunkBoundary(t *testing.T) {
	original := sample(1024)

	decoded, err := Decode(Encode(original))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Fatal("decoded bytes differ from original")
	}
}

func TestRoundTripAboveChunkBoundary(t *testing.T) {
	// 50,000 bytes encodes to ~66,668 characters, spanning three chunks.
	original := sample(50000)

	encoded := Encode(original)
	if len(encoded) <= ChunkSize {
		t.Fatalf("test payload too small to cross a chunk boundary: %d", len(encoded))
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Fatal("decoded bytes differ from original")
	}
}

func TestRoundTripEmpty(t *testing.T) {
	decoded, err := Decode(Encode(nil))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty result, got %d bytes", len(decoded))
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	if _, err := Decode("not base64 at all!!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}
