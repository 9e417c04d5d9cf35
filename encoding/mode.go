package encoding

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/format"
)

// ClassifyChannel returns the mode of one channel's chunk-local samples.
// An empty series is ZeroConstant.
func ClassifyChannel(values []int) format.ChannelMode {
	if len(values) == 0 {
		return format.ModeZeroConstant
	}

	first := values[0]
	for _, v := range values[1:] {
		if v != first {
			return format.ModeVariable
		}
	}

	if first == 0 {
		return format.ModeZeroConstant
	}

	return format.ModeNonZeroConstant
}

// AppendChannel classifies values and appends their payload representation
// to dst: nothing for ZeroConstant, the int16 value for NonZeroConstant and
// a channel block for Variable.
func AppendChannel(dst []byte, values []int, engine endian.EndianEngine) ([]byte, format.ChannelMode) {
	mode := ClassifyChannel(values)

	switch mode {
	case format.ModeNonZeroConstant:
		dst = endian.AppendInt16(engine, dst, values[0])
	case format.ModeVariable:
		dst = AppendChannelBlock(dst, values, engine)
	case format.ModeZeroConstant:
	}

	return dst, mode
}
