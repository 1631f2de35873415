package archive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/evseq/aggregate"
	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/format"
	"github.com/arloliu/evseq/section"
)

func newTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	b := dataset.NewBuilder()
	require.NoError(t, b.AddTypes("login", "search", "purchase"))
	b.SetEventFeatures([][]float64{{1, 0.5}, {0, 1}, {2, 2}})

	_, err := b.AddSequence("alice", dataset.Sequence{
		Times:   []float64{0.25, 1, 1, 3.5},
		Events:  []int{0, 1, 1, 2},
		Feature: []float64{0.1, 0.2, 0.3},
		TStart:  0,
		TStop:   4,
		Label:   dataset.LabelOf(1),
	})
	require.NoError(t, err)
	_, err = b.AddSequence("bob", dataset.Sequence{
		Times:  []float64{10, 12},
		Events: []int{2, 0},
		TStart: 9,
		TStop:  13,
	})
	require.NoError(t, err)

	ds, err := b.Build()
	require.NoError(t, err)

	return ds
}

func TestEncodeDecode(t *testing.T) {
	ds := newTestDataset(t)

	for _, comp := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(comp.String(), func(t *testing.T) {
			data, err := Encode(ds, WithCompression(comp))
			require.NoError(t, err)

			header, err := section.ParseHeader(data)
			require.NoError(t, err)
			require.Equal(t, comp, header.Flag.Compression())
			require.Equal(t, uint32(3), header.TypeCount)
			require.Equal(t, uint32(2), header.SequenceCount)
			require.Equal(t, uint32(2), header.EventFeatureDim)
			require.Equal(t, ds.Fingerprint(), header.Fingerprint)
			require.True(t, header.Flag.HasEventFeatures())
			require.False(t, header.Flag.IsAggregated())

			got, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, ds, got)
		})
	}
}

func TestEncodeDecodeEndianness(t *testing.T) {
	ds := newTestDataset(t)

	little, err := Encode(ds, WithCompression(format.CompressionNone), WithLittleEndian())
	require.NoError(t, err)
	big, err := Encode(ds, WithCompression(format.CompressionNone), WithBigEndian())
	require.NoError(t, err)
	require.NotEqual(t, little, big)

	header, err := section.ParseHeader(big)
	require.NoError(t, err)
	require.True(t, header.Flag.IsBigEndian())

	got, err := Decode(big)
	require.NoError(t, err)
	require.Equal(t, ds, got)
}

func TestEncodeDecodeAggregated(t *testing.T) {
	agg, err := aggregate.Aggregate(newTestDataset(t), 1)
	require.NoError(t, err)

	data, err := Encode(agg)
	require.NoError(t, err)
	header, err := section.ParseHeader(data)
	require.NoError(t, err)
	require.True(t, header.Flag.IsAggregated())

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, agg, got)
}

func TestEncodeWithoutOptionalParts(t *testing.T) {
	ds := &dataset.Dataset{
		TypeToIndex: map[string]int{"a": 0, "b": 1},
		IndexToType: map[int]string{0: "a", 1: "b"},
		SeqToIndex:  map[string]int{},
		IndexToSeq:  map[int]string{},
		Sequences: []dataset.Sequence{
			{Times: []float64{1, 2}, Events: []int{1, 0}, TStart: 0, TStop: 5},
		},
	}

	data, err := Encode(ds)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, ds, got)
	require.False(t, got.HasEventFeatures())
	require.False(t, got.Sequences[0].HasFeature())
	require.False(t, got.Sequences[0].HasLabel())
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, errs.ErrNilDataset)

	ds := newTestDataset(t)
	ds.Sequences[0].Events[0] = 7
	_, err = Encode(ds)
	require.ErrorIs(t, err, errs.ErrUnknownEventType)

	_, err = Encode(newTestDataset(t), WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecodeErrors(t *testing.T) {
	encode := func(t *testing.T) []byte {
		t.Helper()
		data, err := Encode(newTestDataset(t), WithCompression(format.CompressionNone))
		require.NoError(t, err)

		return data
	}

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := Decode(encode(t)[:10])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("BadMagic", func(t *testing.T) {
		data := encode(t)
		data[1] ^= 0xFF
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("Truncated", func(t *testing.T) {
		data := encode(t)
		_, err := Decode(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrTruncatedPayload)
	})

	t.Run("Trailing", func(t *testing.T) {
		_, err := Decode(append(encode(t), 0))
		require.ErrorIs(t, err, errs.ErrTrailingPayloadBytes)
	})

	t.Run("Checksum", func(t *testing.T) {
		data := encode(t)
		data[len(data)-1] ^= 0x01
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("OversizedRawPayload", func(t *testing.T) {
		for _, comp := range []format.CompressionType{
			format.CompressionNone,
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		} {
			data, err := Encode(newTestDataset(t), WithCompression(comp))
			require.NoError(t, err)
			// raw payload size lives at bytes 28-31
			data[28], data[29], data[30], data[31] = 0xFF, 0xFF, 0xFF, 0xFF
			_, err = Decode(data)
			require.ErrorIs(t, err, errs.ErrTruncatedPayload, comp.String())
		}
	})

	t.Run("Fingerprint", func(t *testing.T) {
		data := encode(t)
		data[16] ^= 0x01
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrFingerprintMismatch)
	})
}

func TestWriteRead(t *testing.T) {
	ds := newTestDataset(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds, WithCompression(format.CompressionS2)))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, ds, got)

	_, err = Read(strings.NewReader("short"))
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestJSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		ds := newTestDataset(t)

		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, ds))
		require.Contains(t, buf.String(), `"types"`)
		require.Contains(t, buf.String(), `"alice"`)

		got, err := ReadJSON(&buf)
		require.NoError(t, err)
		require.Equal(t, ds, got)
	})

	t.Run("Unnamed", func(t *testing.T) {
		doc := `{"types":["a","b"],"sequences":[{"times":[1,2],"events":[0,1],"t_start":0,"t_stop":3}]}`
		got, err := ReadJSON(strings.NewReader(doc))
		require.NoError(t, err)
		require.Equal(t, 1, got.Len())
		require.Empty(t, got.SeqToIndex)
		require.Equal(t, []int{0, 1}, got.Sequences[0].Events)
	})

	t.Run("MixedNames", func(t *testing.T) {
		doc := `{"types":["a"],"sequences":[{"name":"x","times":[],"t_start":0,"t_stop":1},{"times":[],"t_start":0,"t_stop":1}]}`
		_, err := ReadJSON(strings.NewReader(doc))
		require.ErrorIs(t, err, errs.ErrInvalidName)
	})

	t.Run("Invalid", func(t *testing.T) {
		doc := `{"types":["a"],"sequences":[{"times":[2,1],"events":[0,0],"t_start":0,"t_stop":3}]}`
		_, err := ReadJSON(strings.NewReader(doc))
		require.ErrorIs(t, err, errs.ErrUnsortedTimes)
	})
}
