// Package meshio serializes and deserializes a core.Mesh to a compact
// binary format: a fixed header (magic number, version, counts) followed
// by the three CSR arrays written back to back, rather than a single
// opaque payload blob.
package meshio

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/sbl8/meshx/core"
)

// magic identifies a meshx binary mesh file. "MESX" in ASCII.
const magic = uint32(0x4D455358)

const formatVersion = uint16(1)

// Serialize writes m to a byte slice in the meshx binary format: an
// 18-byte header (magic, version, row count, interval count) followed
// by the RowKeys array, the RowPtr array, and the Intervals array, each
// written in fixed-width little-endian fields with no padding between
// sections.
func Serialize(m core.Mesh) ([]byte, error) {
	if err := core.Validate(m); err != nil {
		return nil, errors.Wrap(err, "meshio: refusing to serialize invalid mesh")
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, magic); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, formatVersion); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(m.N)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, m.E); err != nil {
		return nil, err
	}

	for _, k := range m.RowKeys {
		if err := binary.Write(&buf, binary.LittleEndian, k.Y); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, k.Z); err != nil {
			return nil, err
		}
	}
	for _, p := range m.RowPtr {
		if err := binary.Write(&buf, binary.LittleEndian, p); err != nil {
			return nil, err
		}
	}
	if len(m.RowPtr) == 0 {
		// An empty mesh may carry no RowPtr at all; the format always
		// stores N+1 offsets, so write its single zero offset.
		if err := binary.Write(&buf, binary.LittleEndian, uint64(0)); err != nil {
			return nil, err
		}
	}
	for _, iv := range m.Intervals {
		if err := binary.Write(&buf, binary.LittleEndian, iv.Begin); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, iv.End); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Deserialize reads a Mesh previously written by Serialize. It does not
// call core.Validate itself — callers that read meshes from an untrusted
// source should validate the result before passing it to Intersect.
func Deserialize(data []byte) (core.Mesh, error) {
	r := bytes.NewReader(data)

	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return core.Empty, errors.Wrap(err, "meshio: reading magic")
	}
	if gotMagic != magic {
		return core.Empty, errors.Newf("meshio: bad magic %#x, want %#x", gotMagic, magic)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return core.Empty, errors.Wrap(err, "meshio: reading version")
	}
	if version != formatVersion {
		return core.Empty, errors.Newf("meshio: unsupported format version %d", version)
	}

	var rowCount uint32
	if err := binary.Read(r, binary.LittleEndian, &rowCount); err != nil {
		return core.Empty, errors.Wrap(err, "meshio: reading row count")
	}
	var intervalCount uint64
	if err := binary.Read(r, binary.LittleEndian, &intervalCount); err != nil {
		return core.Empty, errors.Wrap(err, "meshio: reading interval count")
	}

	rowKeys := make([]core.RowKey, rowCount)
	for i := range rowKeys {
		if err := binary.Read(r, binary.LittleEndian, &rowKeys[i].Y); err != nil {
			return core.Empty, errors.Wrapf(err, "meshio: reading row key %d", i)
		}
		if err := binary.Read(r, binary.LittleEndian, &rowKeys[i].Z); err != nil {
			return core.Empty, errors.Wrapf(err, "meshio: reading row key %d", i)
		}
	}

	rowPtr := make([]uint64, rowCount+1)
	for i := range rowPtr {
		if err := binary.Read(r, binary.LittleEndian, &rowPtr[i]); err != nil {
			return core.Empty, errors.Wrapf(err, "meshio: reading row_ptr %d", i)
		}
	}

	intervals := make([]core.Interval, intervalCount)
	for i := range intervals {
		if err := binary.Read(r, binary.LittleEndian, &intervals[i].Begin); err != nil {
			return core.Empty, errors.Wrapf(err, "meshio: reading interval %d", i)
		}
		if err := binary.Read(r, binary.LittleEndian, &intervals[i].End); err != nil {
			return core.Empty, errors.Wrapf(err, "meshio: reading interval %d", i)
		}
	}

	if _, err := r.ReadByte(); err != io.EOF {
		return core.Empty, errors.New("meshio: trailing data after mesh payload")
	}

	return core.New(rowKeys, rowPtr, intervals), nil
}
