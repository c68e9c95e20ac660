package core

import "github.com/cockroachdb/errors"

// Space names a memory space a Mesh's storage may live in. Every backend
// this module ships treats SpaceHost and SpaceDevice identically — the
// enum exists so the mesh_to<T> API shape is present even without a real
// offload backend; see runtime.Backend.DeepCopy for where a real
// implementation would stage a host<->device transfer.
type Space int

const (
	SpaceHost Space = iota
	SpaceDevice
)

func (s Space) String() string {
	switch s {
	case SpaceHost:
		return "host"
	case SpaceDevice:
		return "device"
	default:
		return "unknown"
	}
}

// To returns a copy of m intended for use in the given memory space. On
// every backend this module ships, host and device storage share the
// same address space, so this is a deep copy with no actual transfer;
// a real offload backend would stage the copy through its DeepCopy
// implementation instead.
func (m Mesh) To(space Space) (Mesh, error) {
	switch space {
	case SpaceHost, SpaceDevice:
		return m.Clone(), nil
	default:
		return Empty, errors.Newf("meshx: unknown memory space %d", space)
	}
}
