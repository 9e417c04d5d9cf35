// Package smd reads the "skeleton" section of an SMD animation file into a
// track.Track of pre-scaled integer samples.
package smd

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/format"
	"github.com/arloliu/ffaconv/internal/trace"
	"github.com/arloliu/ffaconv/track"
)

// Default scale divisors applied to the raw SMD values.
const (
	DefaultPositionScale = 0.00030518
	DefaultRotationScale = 0.001534
)

const (
	sectionStart = "skeleton"
	sectionEnd   = "end"
	timePrefix   = "time"

	// MinFields is the number of fields of a data line: bone id, then
	// posX posY posZ rotX rotY rotZ.
	MinFields = 7
)

// Quantized samples are clamped to the int32 range. Values that far out are
// clamped again by the delta coder, so the bound only keeps the float to int
// conversion defined.
const (
	MinSample = math.MinInt32
	MaxSample = math.MaxInt32
)

// columnChannels maps the SMD value columns to channels.
var columnChannels = [format.ChannelCount]format.Channel{
	format.PosX, format.PosY, format.PosZ,
	format.RotX, format.RotY, format.RotZ,
}

// Scales holds the divisors turning raw SMD values into integer samples.
type Scales struct {
	Position float64
	Rotation float64
}

// DefaultScales returns the scales expected by the target engine.
func DefaultScales() Scales {
	return Scales{Position: DefaultPositionScale, Rotation: DefaultRotationScale}
}

// Parser reads SMD skeleton sections.
type Parser struct {
	scales Scales
	logger *trace.Logger
}

// NewParser creates a parser. Skipped lines are reported to logger, which
// may be nil.
func NewParser(scales Scales, logger *trace.Logger) *Parser {
	return &Parser{scales: scales, logger: logger}
}

// Parse reads r and returns the samples of every bone found between a
// "skeleton" line and the following "end" line.
//
// Blank lines and "time" lines are ignored. Data lines with fewer than
// MinFields fields or unparsable values are skipped and logged. A track with
// no bones yields errs.ErrNoBoneData.
func (p *Parser) Parse(r io.Reader) (track.Track, error) {
	t := track.Track{}

	br := bufio.NewReader(r)

	inSkeleton := false
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, errors.Wrapf(readErr, "read line %d", lineNo+1)
		}
		if errors.Is(readErr, io.EOF) && raw == "" {
			break
		}

		lineNo++
		line := strings.TrimSpace(raw)

		switch {
		case line == sectionStart:
			inSkeleton = true
			continue
		case line == sectionEnd:
			inSkeleton = false
			continue
		case !inSkeleton || line == "":
			continue
		case strings.HasPrefix(strings.ToLower(line), timePrefix):
			continue
		}

		id, samples, err := p.parseLine(line)
		if err != nil {
			p.logger.Printf("   line %d skipped: %v", lineNo, err)
			continue
		}
		t.AddFrame(id, samples)
	}

	if len(t) == 0 {
		return nil, errs.ErrNoBoneData
	}

	return t, nil
}

func (p *Parser) parseLine(line string) (int, [format.ChannelCount]int, error) {
	var samples [format.ChannelCount]int

	fields := strings.Fields(line)
	if len(fields) < MinFields {
		return 0, samples, errors.Errorf("want %d fields, got %d", MinFields, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, samples, errors.Wrap(err, "bone id")
	}

	for i, ch := range columnChannels {
		scale := p.scales.Rotation
		if i < 3 {
			scale = p.scales.Position
		}

		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return 0, samples, errors.Wrapf(err, "%s value", ch)
		}

		samples[ch], err = Quantize(v, scale)
		if err != nil {
			return 0, samples, errors.Wrapf(err, "%s value", ch)
		}
	}

	return id, samples, nil
}

// Quantize divides v by scale and rounds half to even. The result is
// clamped to [MinSample, MaxSample].
func Quantize(v, scale float64) (int, error) {
	q := math.RoundToEven(v / scale)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, errors.Errorf("%v / %v is not finite", v, scale)
	}

	return int(max(MinSample, min(q, MaxSample))), nil
}
