package vault

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4"
	"github.com/ugorji/go/codec"

	"github.com/openfrac/gofracd/internal/core/ledger"
)

// Snapshot is the persisted form of the whole node state: the vault
// aggregate plus the ledger image. Written after every applied
// transaction, read back at startup.
type Snapshot struct {
	Vault   State        `codec:"vault" json:"vault"`
	Ledger  ledger.Image `codec:"ledger" json:"ledger"`
	TakenAt uint64       `codec:"taken_at" json:"taken_at"`
}

// ErrSnapshotTooShort is returned for payloads shorter than the header.
var ErrSnapshotTooShort = errors.New("snapshot payload too short")

// Compression flags in the snapshot header.
const (
	flagRaw byte = 0
	flagLZ4 byte = 1
)

var snapshotHandle = func() *codec.CborHandle {
	h := new(codec.CborHandle)
	h.Canonical = true
	return h
}()

// EncodeSnapshot serializes and compresses a snapshot. The payload is a
// 4-byte big-endian uncompressed length followed by an lz4 block.
func EncodeSnapshot(v *State, lg *ledger.Ledger, takenAt uint64) ([]byte, error) {
	snap := Snapshot{
		Vault:   *v.Clone(),
		Ledger:  lg.Image(),
		TakenAt: takenAt,
	}

	var raw []byte
	enc := codec.NewEncoderBytes(&raw, snapshotHandle)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	// CompressBlock reports 0 for incompressible input; store it raw then
	if n == 0 {
		out := make([]byte, 5+len(raw))
		binary.BigEndian.PutUint32(out[:4], uint32(len(raw)))
		out[4] = flagRaw
		copy(out[5:], raw)
		return out, nil
	}

	out := make([]byte, 5+n)
	binary.BigEndian.PutUint32(out[:4], uint32(len(raw)))
	out[4] = flagLZ4
	copy(out[5:], compressed[:n])
	return out, nil
}

// DecodeSnapshot reverses EncodeSnapshot.
func DecodeSnapshot(data []byte) (*State, *ledger.Ledger, uint64, error) {
	if len(data) < 5 {
		return nil, nil, 0, ErrSnapshotTooShort
	}

	rawSize := binary.BigEndian.Uint32(data[:4])
	var raw []byte
	switch data[4] {
	case flagRaw:
		raw = data[5:]
	case flagLZ4:
		raw = make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data[5:], raw)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("decompress snapshot: %w", err)
		}
		raw = raw[:n]
	default:
		return nil, nil, 0, fmt.Errorf("unknown snapshot compression flag %d", data[4])
	}

	var snap Snapshot
	dec := codec.NewDecoderBytes(raw, snapshotHandle)
	if err := dec.Decode(&snap); err != nil {
		return nil, nil, 0, fmt.Errorf("decode snapshot: %w", err)
	}

	v := snap.Vault.Clone()
	if v.UserPrices == nil {
		v.UserPrices = make(map[string]uint64)
	}
	return v, ledger.FromImage(snap.Ledger), snap.TakenAt, nil
}
