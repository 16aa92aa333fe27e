package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Problem is a single validation failure.
type Problem struct {
	Field   string // JSON path, e.g. "modules[1].schema"
	Message string
}

func (p Problem) String() string {
	return p.Field + ": " + p.Message
}

// ValidationError lists every problem found in a manifest.
type ValidationError struct {
	Manifest string
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("manifest %q is invalid: %s", e.Manifest, strings.Join(parts, "; "))
}

// Validator checks manifests for structural and semantic problems.
type Validator struct {
	// Root, when set, is the directory schema paths are resolved against;
	// every schema must then exist there as a regular file.
	Root string

	validate *validator.Validate
}

// NewValidator returns a Validator resolving schema paths under root.
// An empty root skips the file existence check.
func NewValidator(root string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{Root: root, validate: v}
}

// Validate returns nil or a *ValidationError.
func (v *Validator) Validate(f Format) error {
	if f == nil || reflect.ValueOf(f).IsNil() {
		return ErrNilFormat
	}

	var problems []Problem
	if err := v.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate manifest: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, Problem{Field: fieldPath(fe.Namespace()), Message: tagMessage(fe)})
		}
	}

	for i, mod := range modulesOf(f) {
		path := moduleFrame(i)
		if mod.flags.Unknown() != 0 {
			problems = append(problems, Problem{Field: path + ".flags", Message: fmt.Sprintf("unknown flag bits %#04x", uint8(mod.flags.Unknown()))})
		}
		if p, ok := v.checkSchema(path, mod.schema); !ok {
			problems = append(problems, p)
		}
	}
	problems = append(problems, duplicateModules(f)...)

	if len(problems) > 0 {
		return &ValidationError{Manifest: f.ManifestName(), Problems: problems}
	}
	return nil
}

// checkSchema verifies that schema names a regular file inside Root.
func (v *Validator) checkSchema(path, schema string) (Problem, bool) {
	if v.Root == "" || schema == "" {
		return Problem{}, true
	}
	field := path + ".schema"
	if filepath.IsAbs(schema) || !filepath.IsLocal(schema) {
		return Problem{Field: field, Message: fmt.Sprintf("%q escapes the manifest root", schema)}, false
	}
	info, err := os.Stat(filepath.Join(v.Root, schema))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Problem{Field: field, Message: fmt.Sprintf("%q does not exist", schema)}, false
	case err != nil:
		return Problem{Field: field, Message: err.Error()}, false
	case !info.Mode().IsRegular():
		return Problem{Field: field, Message: fmt.Sprintf("%q is not a regular file", schema)}, false
	}
	return Problem{}, true
}

func duplicateModules(f Format) []Problem {
	var problems []Problem
	seen := make(map[string]int)
	for i, mod := range modulesOf(f) {
		if mod.name == "" {
			continue
		}
		if first, ok := seen[mod.name]; ok {
			problems = append(problems, Problem{
				Field:   moduleFrame(i) + ".name",
				Message: fmt.Sprintf("duplicate module %q (first at %s)", mod.name, moduleFrame(first)),
			})
			continue
		}
		seen[mod.name] = i
	}
	return problems
}

type moduleView struct {
	name   string
	schema string
	flags  ModuleFlags
}

func modulesOf(f Format) []moduleView {
	switch m := f.(type) {
	case *V1:
		out := make([]moduleView, len(m.Modules))
		for i, mod := range m.Modules {
			out[i] = moduleView{name: mod.Name, schema: mod.SchemaPath}
		}
		return out
	case *V2:
		out := make([]moduleView, len(m.Modules))
		for i, mod := range m.Modules {
			out[i] = moduleView{name: mod.Name, schema: mod.SchemaPath, flags: mod.Flags}
		}
		return out
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace:
// "V2.modules[1].schema" becomes "modules[1].schema".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
