package manifest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Version identifies a manifest wire format.
type Version uint16

const (
	Version1 Version = 1
	Version2 Version = 2

	// LatestVersion is the format produced by Upgrade.
	LatestVersion = Version2
)

func (v Version) String() string {
	return fmt.Sprintf("v%d", uint16(v))
}

// Supported reports whether v is a format this package can decode.
func (v Version) Supported() bool {
	return v == Version1 || v == Version2
}

// Format is one concrete manifest version. The set of implementations is
// closed: *V1 and *V2.
type Format interface {
	Version() Version
	ManifestName() string
	isFormat()
}

// V1 is the original manifest format: a name and a flat list of modules.
type V1 struct {
	Name    string     `json:"name" yaml:"name" validate:"required,max=255"`
	Modules []ModuleV1 `json:"modules" yaml:"modules" validate:"dive"`
}

// ModuleV1 is a module entry in a V1 manifest.
type ModuleV1 struct {
	Name       string `json:"name" yaml:"name" validate:"required,max=255"`
	SchemaPath string `json:"schema" yaml:"schema" validate:"required,max=4096"`
}

func (*V1) Version() Version       { return Version1 }
func (m *V1) ManifestName() string { return m.Name }
func (*V1) isFormat()              {}

// V2 adds a stable identifier, a creation time and per-module size,
// checksum and flags.
type V2 struct {
	ID        uuid.UUID `json:"id" yaml:"id" validate:"required"`
	Name      string    `json:"name" yaml:"name" validate:"required,max=255"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Modules   []Module  `json:"modules" yaml:"modules" validate:"dive"`
}

// Module is a module entry in a V2 manifest.
type Module struct {
	Name       string      `json:"name" yaml:"name" validate:"required,max=255"`
	SchemaPath string      `json:"schema" yaml:"schema" validate:"required,max=4096"`
	Size       uint64      `json:"size" yaml:"size"`
	Checksum   uint32      `json:"checksum" yaml:"checksum"`
	Flags      ModuleFlags `json:"flags,omitempty" yaml:"flags,omitempty"`
}

func (*V2) Version() Version       { return Version2 }
func (m *V2) ManifestName() string { return m.Name }
func (*V2) isFormat()              {}

// ModuleFlags is a bit set of per-module options.
type ModuleFlags uint8

const (
	// FlagOptional marks a module that consumers may skip.
	FlagOptional ModuleFlags = 1 << iota
	// FlagGenerated marks a module produced by code generation.
	FlagGenerated

	knownFlags = FlagOptional | FlagGenerated
)

// Has reports whether every bit of f is set.
func (m ModuleFlags) Has(f ModuleFlags) bool { return m&f == f }

// Unknown returns the bits not assigned to any named flag.
func (m ModuleFlags) Unknown() ModuleFlags { return m &^ knownFlags }
