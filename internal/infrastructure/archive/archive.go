// Package archive writes and reads store snapshots as JSON, zstd-compressed
// when the payload is large enough to benefit.
package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"recyclehub/internal/store"
)

// DefaultCompressThreshold is the payload size from which snapshots are compressed.
const DefaultCompressThreshold = 10 * 1024

// zstd frame magic number.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Archiver encodes snapshots.
type Archiver struct {
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
	threshold int
}

// New creates an archiver. threshold <= 0 uses DefaultCompressThreshold;
// use Always to compress every snapshot.
func New(threshold int) (*Archiver, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	if threshold <= 0 {
		threshold = DefaultCompressThreshold
	}
	return &Archiver{encoder: encoder, decoder: decoder, threshold: threshold}, nil
}

// Always compresses regardless of size.
const Always = 1

// Close releases the decoder.
func (a *Archiver) Close() {
	a.decoder.Close()
}

// Write encodes snap to w. It reports whether the output was compressed.
func (a *Archiver) Write(w io.Writer, snap store.Snapshot) (bool, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return false, fmt.Errorf("encode snapshot: %w", err)
	}

	compressed := len(payload) >= a.threshold
	if compressed {
		payload = a.encoder.EncodeAll(payload, make([]byte, 0, len(payload)/2))
	}
	if _, err := w.Write(payload); err != nil {
		return false, fmt.Errorf("write snapshot: %w", err)
	}
	return compressed, nil
}

// Read decodes a snapshot written by Write, compressed or not.
func (a *Archiver) Read(r io.Reader) (store.Snapshot, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	if bytes.HasPrefix(payload, zstdMagic) {
		payload, err = a.decoder.DecodeAll(payload, nil)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("decompress snapshot: %w", err)
		}
	}

	var snap store.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
