package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/marmos91/dataview/internal/bytesize"
	"github.com/marmos91/dataview/pkg/dataview"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct-tag constraints and cross-field rules.
// Struct-tag failures are returned as validator.ValidationErrors.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	if limit := bytesize.ByteSize(dataview.BlockMaxSize); cfg.Codec.MaxManifestSize > limit {
		return fmt.Errorf("codec.max_manifest_size %s exceeds the block limit of %s", cfg.Codec.MaxManifestSize, limit)
	}

	return nil
}
