package section

const (
	// Bit masks of the options word
	EventFeaturesMask = 0x0001 // event feature table present (bit 0)
	EndiannessMask    = 0x0002 // 0=little, 1=big (bit 1)
	AggregatedMask    = 0x0004 // sequences hold count matrices (bit 2)
	ReservedBitsMask  = 0x0008 // must be 0 (bit 3)
	MagicNumberMask   = 0xFFF0 // magic number (bits 4-15)

	// MagicDatasetV1Opt is the version 1 magic number of the dataset archive.
	MagicDatasetV1Opt = 0xE510
)

const (
	HeaderSize = 40 // fixed header size in bytes

	// MaxPayloadSize is the largest raw or stored payload a header can describe.
	MaxPayloadSize = 1<<32 - 1
)

// Per-sequence flag bits written in front of every sequence record.
const (
	SeqHasFeature = 0x01
	SeqHasLabel   = 0x02
)
