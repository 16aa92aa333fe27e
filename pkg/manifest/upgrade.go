package manifest

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Upgrade converts any supported format to LatestVersion. Each transition
// is an explicit step; V2 input is returned as an independent copy.
func Upgrade(f Format) (*V2, error) {
	switch m := f.(type) {
	case *V1:
		if m == nil {
			return nil, ErrNilFormat
		}
		return upgradeV1(m), nil
	case *V2:
		if m == nil {
			return nil, ErrNilFormat
		}
		out := *m
		out.Modules = slices.Clone(m.Modules)
		return &out, nil
	case nil:
		return nil, ErrNilFormat
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedVersion, f)
	}
}

// upgradeV1 derives the V2 identifier from the manifest name so that
// upgrading the same V1 manifest twice yields the same ID.
func upgradeV1(m *V1) *V2 {
	out := &V2{
		ID:   DeriveID(m.Name),
		Name: m.Name,
	}
	if len(m.Modules) > 0 {
		out.Modules = make([]Module, len(m.Modules))
		for i, mod := range m.Modules {
			out.Modules[i] = Module{Name: mod.Name, SchemaPath: mod.SchemaPath}
		}
	}
	return out
}

// DeriveID returns the deterministic identifier assigned to a manifest
// named name when it has none of its own.
func DeriveID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}
