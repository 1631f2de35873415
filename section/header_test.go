package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/format"
)

func newTestHeader() *Header {
	h := NewHeader()
	h.TypeCount = 12
	h.SequenceCount = 3400
	h.EventFeatureDim = 4
	h.Fingerprint = 0x0123456789abcdef
	h.PayloadSize = 1000
	h.RawPayloadSize = 4096
	h.Checksum = 0xfedcba9876543210
	h.Flag.SetHasEventFeatures(true)

	return h
}

func TestNewHeader(t *testing.T) {
	h := NewHeader()
	require.Equal(t, uint16(MagicDatasetV1Opt), h.Flag.GetMagicNumber())
	require.True(t, h.Flag.IsLittleEndian())
	require.False(t, h.Flag.HasEventFeatures())
	require.False(t, h.Flag.IsAggregated())
	require.Equal(t, format.CompressionZstd, h.Flag.Compression())
	require.NoError(t, h.Flag.Validate())
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		h := newTestHeader()
		if big {
			h.Flag.WithBigEndian()
		}
		h.Flag.SetAggregated(true)
		h.Flag.SetCompression(format.CompressionLZ4)

		data := h.Bytes()
		require.Len(t, data, HeaderSize)

		parsed, err := ParseHeader(data)
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
		require.Equal(t, big, parsed.Flag.IsBigEndian())
	}
}

func TestHeader_ByteLayout(t *testing.T) {
	h := newTestHeader()
	data := h.Bytes()

	// options word: magic 0xE510 | event features bit
	require.Equal(t, []byte{0x11, 0xE5}, data[0:2])
	require.Equal(t, byte(format.CompressionZstd), data[2])
	require.Equal(t, byte(0), data[3])
	require.Equal(t, []byte{12, 0, 0, 0}, data[4:8])

	h.Flag.WithBigEndian()
	data = h.Bytes()
	require.Equal(t, []byte{0x13, 0xE5}, data[0:2])
	require.Equal(t, []byte{0, 0, 0, 12}, data[4:8])
}

func TestHeader_ParseErrors(t *testing.T) {
	t.Run("Size", func(t *testing.T) {
		_, err := ParseHeader([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		h := &Header{}
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	t.Run("Magic", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[1] = 0xEA
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("ReservedBit", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[0] |= ReservedBitsMask
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("ReservedByte", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[3] = 1
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Compression", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[2] = 0x09
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}
