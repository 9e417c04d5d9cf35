package format

type (
	Channel         uint8
	ChannelMode     uint8
	CompressionType uint8
)

// Channels in wire order. The mode table and the payload area are both
// traversed in this order for every bone.
const (
	RotX Channel = iota // RotX is the rotation around the X axis.
	RotY                // RotY is the rotation around the Y axis.
	RotZ                // RotZ is the rotation around the Z axis.
	PosX                // PosX is the translation along the X axis.
	PosY                // PosY is the translation along the Y axis.
	PosZ                // PosZ is the translation along the Z axis.

	ChannelCount = 6
)

// Mode codes are the 2-bit values written into the mode table.
const (
	ModeZeroConstant    ChannelMode = 0x0 // ModeZeroConstant is "00": all samples are zero, no payload.
	ModeNonZeroConstant ChannelMode = 0x2 // ModeNonZeroConstant is "10": one int16 value in the payload.
	ModeVariable        ChannelMode = 0x3 // ModeVariable is "11": a delta/RLE block in the payload.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Channels lists every channel in wire order.
var Channels = [ChannelCount]Channel{RotX, RotY, RotZ, PosX, PosY, PosZ}

func (c Channel) String() string {
	switch c {
	case RotX:
		return "rotX"
	case RotY:
		return "rotY"
	case RotZ:
		return "rotZ"
	case PosX:
		return "posX"
	case PosY:
		return "posY"
	case PosZ:
		return "posZ"
	default:
		return "Unknown"
	}
}

func (m ChannelMode) String() string {
	switch m {
	case ModeZeroConstant:
		return "ZeroConstant"
	case ModeNonZeroConstant:
		return "NonZeroConstant"
	case ModeVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a profile or flag name to a CompressionType.
// The second return value is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "", "none", "None":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// Extension returns the file extension appended to sidecar files.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
