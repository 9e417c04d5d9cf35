// Package config loads the conversion profile: chunk lengths, scales, output
// naming and the optional sidecar, stored as YAML.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/format"
	"github.com/arloliu/ffaconv/smd"
)

// DefaultOutputSuffix replaces the input extension of every converted file.
const DefaultOutputSuffix = ".ffa"

// Profile is one conversion setup.
//
//	chunk_sizes: [10, 35, 3]
//	position_scale: 0.00030518
//	rotation_scale: 0.001534
//	output_suffix: .ffa
//	sidecar: zstd
//	skip_unchanged: true
type Profile struct {
	ChunkSizes    []int   `yaml:"chunk_sizes"`
	PositionScale float64 `yaml:"position_scale"`
	RotationScale float64 `yaml:"rotation_scale"`
	OutputSuffix  string  `yaml:"output_suffix"`
	// Sidecar names the codec of the extra compressed copy: none, zstd, s2 or lz4.
	Sidecar string `yaml:"sidecar"`
	// SkipUnchanged leaves an existing output alone when its content would not change.
	SkipUnchanged bool `yaml:"skip_unchanged"`
}

// Default returns a profile with the engine scales, the .ffa suffix, no
// sidecar and no chunk sizes.
func Default() Profile {
	return Profile{
		PositionScale: smd.DefaultPositionScale,
		RotationScale: smd.DefaultRotationScale,
		OutputSuffix:  DefaultOutputSuffix,
		Sidecar:       "none",
	}
}

// Load reads a profile from path. Missing keys keep their Default values.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "open profile %q", path)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "profile %q", path)
	}

	return p, nil
}

// Decode reads a YAML profile from r and validates it. Unknown keys are
// rejected.
func Decode(r io.Reader) (Profile, error) {
	p := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, errors.Wrap(err, "unmarshal yaml")
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Encode writes p as YAML.
func (p Profile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(err, "marshal yaml")
	}

	return errors.Wrap(enc.Close(), "close yaml encoder")
}

// Validate checks every field. An empty ChunkSizes is accepted so that the
// lengths can be supplied later; see RequireChunkSizes.
func (p Profile) Validate() error {
	for i, size := range p.ChunkSizes {
		if size <= 0 {
			return errors.Wrapf(errs.ErrInvalidChunkSize, "chunk #%d has length %d", i+1, size)
		}
	}

	if p.PositionScale <= 0 || p.RotationScale <= 0 {
		return errors.Errorf("scales must be positive, got position %v rotation %v", p.PositionScale, p.RotationScale)
	}

	if !strings.HasPrefix(p.OutputSuffix, ".") || len(p.OutputSuffix) < 2 {
		return errors.Errorf("output suffix %q must start with a dot", p.OutputSuffix)
	}

	if _, err := p.Compression(); err != nil {
		return err
	}

	return nil
}

// RequireChunkSizes fails with errs.ErrNoChunkSizes when ChunkSizes is empty.
func (p Profile) RequireChunkSizes() error {
	if len(p.ChunkSizes) == 0 {
		return errs.ErrNoChunkSizes
	}

	return nil
}

// Compression returns the sidecar codec. An empty Sidecar means none.
func (p Profile) Compression() (format.CompressionType, error) {
	if p.Sidecar == "" {
		return format.CompressionNone, nil
	}

	ct, ok := format.ParseCompressionType(p.Sidecar)
	if !ok {
		return 0, errors.Wrapf(errs.ErrInvalidCompression, "sidecar %q", p.Sidecar)
	}

	return ct, nil
}

// Scales returns the parser scales of the profile.
func (p Profile) Scales() smd.Scales {
	return smd.Scales{Position: p.PositionScale, Rotation: p.RotationScale}
}

// ParseChunkSizes parses a comma separated list of positive chunk lengths
// such as "10,35,3". Whitespace around each entry is ignored.
func ParseChunkSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errs.ErrNoChunkSizes
	}

	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(errs.ErrInvalidChunkSize, "%q", strings.TrimSpace(part))
		}
		if size <= 0 {
			return nil, errors.Wrapf(errs.ErrInvalidChunkSize, "%d", size)
		}
		sizes = append(sizes, size)
	}

	return sizes, nil
}
