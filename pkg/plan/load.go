package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/floorplan/pkg/errors"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
)

// Format is a plan file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported plan file %q (must be .toml, .yaml, .yml or .json)", path)
}

// Load reads a plan file, applies defaults and validates it.
func Load(path string) (Plan, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Plan{}, err
	}
	data, err := pkgio.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	p, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Decode parses a plan from r, applies defaults and validates it.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
// Only omitted parameters are defaulted: an explicit zero corridor_width or
// wall_thickness is a configuration error.
func Decode(r io.Reader, format Format) (Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Plan{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", format)
	}

	var p Plan
	var defined func(key string) bool
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p)
		if err != nil {
			return Plan{}, decodeError(format, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Plan{}, errors.New(errors.ErrCodeInvalidInput, "unknown key %q", undecoded[0].String())
		}
		defined = func(key string) bool { return md.IsDefined("params", key) }
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Plan{}, decodeError(format, err)
		}
		var set setParams
		if err := yaml.Unmarshal(data, &set); err != nil {
			return Plan{}, decodeError(format, err)
		}
		defined = set.defined
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Plan{}, decodeError(format, err)
		}
		var set setParams
		if err := json.Unmarshal(data, &set); err != nil {
			return Plan{}, decodeError(format, err)
		}
		defined = set.defined
	default:
		return Plan{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported plan format %q", format)
	}

	if err := p.Params.validateSet(defined); err != nil {
		return Plan{}, err
	}
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// setParams records which defaulted parameters a YAML or JSON document sets.
type setParams struct {
	Params struct {
		CorridorWidth *float64 `yaml:"corridor_width" json:"corridor_width"`
		WallThickness *float64 `yaml:"wall_thickness" json:"wall_thickness"`
	} `yaml:"params" json:"params"`
}

func (s setParams) defined(key string) bool {
	switch key {
	case "corridor_width":
		return s.Params.CorridorWidth != nil
	case "wall_thickness":
		return s.Params.WallThickness != nil
	}
	return false
}

// validateSet rejects defaulted parameters that are present but not positive.
func (pr Params) validateSet(defined func(key string) bool) error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"corridor_width", pr.CorridorWidth},
		{"wall_thickness", pr.WallThickness},
	} {
		if !defined(f.key) {
			continue
		}
		if err := errors.ValidatePositive("params", f.key, f.v); err != nil {
			return err
		}
	}
	return nil
}

// decodeError keeps configuration errors raised by enum parsing intact and
// classifies everything else as malformed input.
func decodeError(format Format, err error) error {
	if errors.Is(err, errors.ErrCodeConfiguration) {
		return err
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", format)
}

// Encode writes p to w in the given format.
func Encode(w io.Writer, p Plan, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(p)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported plan format %q", format)
}
