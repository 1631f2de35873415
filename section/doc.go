// Package section defines the binary header of the evseq dataset archive.
//
// # Archive Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (40 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes, compressed with the codec)  │
//	│  - vocabulary names                                     │
//	│  - event feature table (optional)                       │
//	│  - one record per sequence                              │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field           | Type   | Description
//	-------|-----------------|--------|----------------------------------
//	0-1    | Options         | uint16 | Flags and magic, always little-endian
//	2      | CompressionType | uint8  | 0x1=None, 0x2=Zstd, 0x3=S2, 0x4=LZ4
//	3      | Reserved        | uint8  | Must be 0
//	4-7    | TypeCount       | uint32 | Vocabulary size
//	8-11   | SequenceCount   | uint32 | Number of sequences
//	12-15  | EventFeatureDim | uint32 | Event feature width, 0 when absent
//	16-23  | Fingerprint     | uint64 | xxHash64 of the ordered vocabulary
//	24-27  | PayloadSize     | uint32 | Stored payload size
//	28-31  | RawPayloadSize  | uint32 | Uncompressed payload size
//	32-39  | Checksum        | uint64 | xxHash64 of the uncompressed payload
//
// # Options Word
//
//	Bit 0: Event feature table present
//	Bit 1: Endianness (0=little-endian, 1=big-endian)
//	Bit 2: Aggregated sequences
//	Bit 3: Reserved (must be 0)
//	Bits 4-15: Magic number (0xE510)
//
// All fields after the options word use the byte order selected by bit 1.
package section
