package convert

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/arloliu/ffaconv/compress"
	"github.com/arloliu/ffaconv/config"
	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/ffa"
	"github.com/arloliu/ffaconv/format"
	"github.com/arloliu/ffaconv/internal/hash"
	"github.com/arloliu/ffaconv/internal/options"
	"github.com/arloliu/ffaconv/internal/trace"
	"github.com/arloliu/ffaconv/smd"
)

// Option configures a Converter.
type Option = options.Option[*Converter]

// WithLogger sets the progress logger. A nil logger is silent.
func WithLogger(logger *trace.Logger) Option {
	return options.NoError(func(c *Converter) {
		c.logger = logger
	})
}

// WithLayoutDump writes a dump of every file layout to w.
func WithLayoutDump(w io.Writer) Option {
	return options.NoError(func(c *Converter) {
		c.dump = w
	})
}

// Converter converts SMD files according to a config.Profile.
type Converter struct {
	profile     config.Profile
	parser      *smd.Parser
	encoder     *ffa.Encoder
	sidecarType format.CompressionType
	sidecar     compress.Codec
	logger      *trace.Logger
	dump        io.Writer
}

// Result describes one converted file.
type Result struct {
	Input   string
	Output  string
	Sidecar string // empty without a sidecar

	Bones  int
	Frames int
	Layout ffa.Layout

	// Fingerprint is the xxHash64 of the output bytes.
	Fingerprint uint64
	// Unchanged is set when the existing output already held the same bytes
	// and was left untouched.
	Unchanged bool
}

// New creates a converter. The profile must carry chunk sizes.
func New(profile config.Profile, opts ...Option) (*Converter, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := profile.RequireChunkSizes(); err != nil {
		return nil, err
	}

	c := &Converter{profile: profile}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	sidecarType, err := profile.Compression()
	if err != nil {
		return nil, err
	}
	c.sidecarType = sidecarType
	if sidecarType != format.CompressionNone {
		c.sidecar, err = compress.CreateCodec(sidecarType)
		if err != nil {
			return nil, err
		}
	}

	c.parser = smd.NewParser(profile.Scales(), c.logger)
	c.encoder, err = ffa.NewEncoder(
		ffa.WithChunkSizes(profile.ChunkSizes...),
		ffa.WithLogger(c.logger),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// OutputPath returns input with its extension replaced by suffix.
func OutputPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// ConvertFile converts one SMD file and writes the output next to it.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read file")
	}
	defer f.Close()

	t, err := c.parser.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	res := &Result{
		Input:  path,
		Output: OutputPath(path, c.profile.OutputSuffix),
		Bones:  t.BoneCount(),
		Frames: t.FrameCount(),
	}
	c.logger.Printf("Found %d bone(s) and %d total frame(s) of animation.", res.Bones, res.Frames)
	if err := t.Validate(); err != nil {
		c.logger.Printf("   warning: %v", err)
	}
	c.logger.Println(strings.Repeat("-", 35))

	data, layout, err := c.encoder.Encode(t)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}
	res.Layout = layout
	res.Fingerprint = hash.Fingerprint(data)

	if c.dump != nil {
		DumpLayout(c.dump, res.Output, layout)
	}

	err = c.writeOutput(res.Output, data, res.Fingerprint)
	switch {
	case errors.Is(err, errs.ErrUnchangedOutput):
		res.Unchanged = true
		c.logger.Printf("Output '%s' is up to date (%s).", filepath.Base(res.Output), hash.Format(res.Fingerprint))

		return res, nil
	case err != nil:
		return nil, errors.Wrapf(err, "could not write to file '%s'", res.Output)
	}

	c.logger.Printf("SUCCESS: Saved complete file structure to '%s' (%d bytes, %s)",
		filepath.Base(res.Output), len(data), hash.Format(res.Fingerprint))

	if c.sidecar != nil {
		res.Sidecar = res.Output + c.sidecarType.Extension()
		if err := c.writeSidecar(res.Sidecar, data); err != nil {
			return nil, errors.Wrapf(err, "could not write sidecar '%s'", res.Sidecar)
		}
	}

	return res, nil
}

// writeOutput writes data to path. With skip_unchanged it returns
// errs.ErrUnchangedOutput instead when path already holds the same bytes.
func (c *Converter) writeOutput(path string, data []byte, sum uint64) error {
	if c.profile.SkipUnchanged {
		existing, err := fingerprintFile(path)
		if err == nil && existing == sum {
			return errs.ErrUnchangedOutput
		}
	}

	return writeFile(path, data)
}

func (c *Converter) writeSidecar(path string, data []byte) error {
	compressed, err := c.sidecar.Compress(data)
	if err != nil {
		return err
	}

	if err := writeFile(path, compressed); err != nil {
		return err
	}

	c.logger.Printf(" > Sidecar '%s': %d -> %d bytes (%.1f%%)", filepath.Base(path),
		len(data), len(compressed), 100*compress.Ratio(len(data), len(compressed)))

	return nil
}

func fingerprintFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return hash.FingerprintReader(f)
}

// writeFile writes data to path. The Close error is returned too.
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)

	return err
}
