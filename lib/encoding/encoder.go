// Package encoding produces stable binary snapshots and digests of block
// state, used to detect whether a generated block changed between runs.
package encoding

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNilSnapshot is returned when a nil Snapshotter is encoded.
var ErrNilSnapshot = errors.New("encoding: nil snapshot")

// digestSize is the number of hash bytes kept in a digest (128 bits).
const digestSize = 16

// Snapshotter is implemented by values that can describe their full render
// state as plain data. Values may be any msgpack-encodable type, including
// types implementing msgpack.CustomEncoder such as attribute trees.
type Snapshotter interface {
	Snapshot() map[string]any
}

// Encode serializes the snapshot to msgpack. Map keys are sorted so equal
// snapshots always produce identical bytes.
func Encode(s Snapshotter) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s.Snapshot()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode unpacks an encoded snapshot into plain Go values.
func Decode(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Digest returns a hex digest of the encoded snapshot.
func Digest(s Snapshotter) (string, error) {
	packed, err := Encode(s)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(packed)
	return hex.EncodeToString(h[:digestSize]), nil
}

// SnapshotFunc adapts a function to the Snapshotter interface.
type SnapshotFunc func() map[string]any

// Snapshot calls f.
func (f SnapshotFunc) Snapshot() map[string]any {
	return f()
}
