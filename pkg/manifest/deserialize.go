package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrParse means a textual manifest is neither valid JSON nor valid YAML.
	ErrParse = errors.New("unable to parse manifest")

	// ErrMissingFormat means a textual manifest has no format field.
	ErrMissingFormat = errors.New("manifest has no format version")

	// ErrNewerFormat means a textual manifest was written in a format newer
	// than LatestVersion. Manifests are never downgraded.
	ErrNewerFormat = errors.New("cannot downgrade manifest format")
)

// DeserializeOption configures Deserialize.
type DeserializeOption func(*deserializeOptions)

type deserializeOptions struct {
	validator *Validator
	validate  bool
}

// WithValidator checks manifests with v instead of a Validator without a
// schema root.
func WithValidator(v *Validator) DeserializeOption {
	return func(o *deserializeOptions) { o.validator = v }
}

// WithoutValidation skips validation before the upgrade.
func WithoutValidation() DeserializeOption {
	return func(o *deserializeOptions) { o.validate = false }
}

// header is the part common to every textual format version.
type header struct {
	Format *Version `json:"format" yaml:"format"`
}

type documentV1 struct {
	Format Version `json:"format" yaml:"format"`
	V1     `yaml:",inline"`
}

type documentV2 struct {
	Format Version `json:"format" yaml:"format"`
	V2     `yaml:",inline"`
}

// Deserialize reads a textual manifest, JSON if data is valid JSON and YAML
// otherwise, validates it against the version named by its format field and
// upgrades it to LatestVersion:
//
//	format: 1
//	name: wallet
//	modules:
//	  - name: query
//	    schema: schema/query.graphql
//
// Fields unknown to that version are rejected.
func Deserialize(data []byte, opts ...DeserializeOption) (*V2, error) {
	o := deserializeOptions{validate: true}
	for _, opt := range opts {
		opt(&o)
	}

	unmarshal := unmarshalYAML
	if json.Valid(data) {
		unmarshal = unmarshalJSON
	}

	var h header
	if err := unmarshal(data, &h, false); err != nil {
		return nil, err
	}
	if h.Format == nil {
		return nil, ErrMissingFormat
	}

	version := *h.Format
	var f Format
	switch {
	case version > LatestVersion:
		return nil, fmt.Errorf("%w %s: latest supported format is %s", ErrNewerFormat, version, LatestVersion)
	case version == Version1:
		var doc documentV1
		if err := unmarshal(data, &doc, true); err != nil {
			return nil, err
		}
		f = &doc.V1
	case version == Version2:
		var doc documentV2
		if err := unmarshal(data, &doc, true); err != nil {
			return nil, err
		}
		f = &doc.V2
	default:
		return nil, fmt.Errorf("%w %d", ErrUnsupportedVersion, uint16(version))
	}

	if o.validate {
		v := o.validator
		if v == nil {
			v = NewValidator("")
		}
		if err := v.Validate(f); err != nil {
			return nil, err
		}
	}
	return Upgrade(f)
}

func unmarshalJSON(data []byte, out any, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w as JSON: %w", ErrParse, err)
	}
	return nil
}

func unmarshalYAML(data []byte, out any, strict bool) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrParse)
		}
		return fmt.Errorf("%w as YAML: %w", ErrParse, err)
	}
	return nil
}
