package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
)

func newTestDataset(t *testing.T, seqs ...dataset.Sequence) *dataset.Dataset {
	t.Helper()

	b := dataset.NewBuilder()
	require.NoError(t, b.AddTypes("a", "b"))
	for i, seq := range seqs {
		_, err := b.AddSequence(string(rune('p'+i)), seq)
		require.NoError(t, err)
	}
	ds, err := b.Build()
	require.NoError(t, err)

	return ds
}

func exampleSequence() dataset.Sequence {
	return dataset.Sequence{
		Times:   []float64{1, 4, 6, 9},
		Events:  []int{0, 1, 0, 1},
		TStart:  0,
		TStop:   10,
		Feature: []float64{0.5},
		Label:   dataset.LabelOf(3),
	}
}

func TestAggregateFloorExample(t *testing.T) {
	ds := newTestDataset(t, exampleSequence())

	out, err := Aggregate(ds, 5, WithBinAssignment(AssignFloor))
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	seq := out.Sequences[0]
	require.Equal(t, []float64{5, 10, 15}, seq.Times)
	require.Equal(t, [][]int{{1, 1}, {1, 1}, {0, 0}}, seq.Counts)
	require.Nil(t, seq.Events)
	require.True(t, seq.IsAggregated())
	require.Equal(t, []float64{0.5}, seq.Feature)
	require.InDelta(t, 3.0, *seq.Label, 0)
	require.InDelta(t, 0.0, seq.TStart, 0)
	require.InDelta(t, 10.0, seq.TStop, 0)
	require.Equal(t, ds.TypeToIndex, out.TypeToIndex)

	// input untouched
	require.Nil(t, ds.Sequences[0].Counts)
	require.Equal(t, []int{0, 1, 0, 1}, ds.Sequences[0].Events)
}

func TestAggregateRound(t *testing.T) {
	ds := newTestDataset(t, exampleSequence())

	out, err := Aggregate(ds, 5)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0}, {1, 1}, {0, 1}}, out.Sequences[0].Counts)

	// half to even: 2.5 → 2, 7.5 → 8
	ds = newTestDataset(t, dataset.Sequence{Times: []float64{2.5, 7.5}, Events: []int{0, 1}, TStart: 0, TStop: 10})
	out, err = Aggregate(ds, 1)
	require.NoError(t, err)
	require.Len(t, out.Sequences[0].Counts, 11)
	require.Equal(t, []int{1, 0}, out.Sequences[0].Counts[2])
	require.Equal(t, []int{0, 1}, out.Sequences[0].Counts[8])
}

func TestAggregateBinCount(t *testing.T) {
	tests := []struct {
		tStart, tStop, dt float64
		bins              int
	}{
		{0, 10, 5, 3},
		{0, 10, 3, 4}, // round(3.33) + 1
		{0, 10, 4, 3}, // round(2.5) = 2
		{0, 14, 4, 5}, // round(3.5) = 4
		{2, 2, 1, 1},  // empty window
		{0, 1, 0.1, 11},
	}

	for _, tt := range tests {
		ds := newTestDataset(t, dataset.Sequence{Times: []float64{}, Events: []int{}, TStart: tt.tStart, TStop: tt.tStop})
		out, err := Aggregate(ds, tt.dt)
		require.NoError(t, err)
		require.Len(t, out.Sequences[0].Times, tt.bins, "window [%v,%v] dt %v", tt.tStart, tt.tStop, tt.dt)
		require.Len(t, out.Sequences[0].Counts, tt.bins)
		for n, end := range out.Sequences[0].Times {
			require.InDelta(t, tt.tStart+float64(n+1)*tt.dt, end, 1e-9)
		}
	}
}

func TestAggregateTotalCount(t *testing.T) {
	seqs := []dataset.Sequence{
		{Times: []float64{0, 0.3, 1.1, 2.2, 2.9, 3.4}, Events: []int{0, 1, 1, 0, 0, 1}, TStart: 0, TStop: 3.5},
		{Times: []float64{10.2, 11}, Events: []int{1, 1}, TStart: 10, TStop: 12},
	}
	ds := newTestDataset(t, seqs...)

	for _, assign := range []BinAssignment{AssignRound, AssignFloor} {
		out, err := Aggregate(ds, 0.5, WithBinAssignment(assign))
		require.NoError(t, err)
		for i, seq := range out.Sequences {
			total := 0
			for _, row := range seq.Counts {
				for _, n := range row {
					total += n
				}
			}
			require.Equal(t, len(seqs[i].Times), total, "%s sequence %d", assign, i)
		}
	}
}

func TestAggregatePolicies(t *testing.T) {
	// -4 rounds to bin -1 and 14 to bin 3 of 3
	seq := dataset.Sequence{Times: []float64{-4, 1, 14}, Events: []int{0, 1, 1}, TStart: 0, TStop: 10}

	t.Run("Raise", func(t *testing.T) {
		_, err := Aggregate(newTestDataset(t, seq), 5)
		require.ErrorIs(t, err, errs.ErrBinOutOfRange)
		require.Contains(t, err.Error(), "sequence 0")
		require.Contains(t, err.Error(), "event 0")
	})

	t.Run("Clamp", func(t *testing.T) {
		out, err := Aggregate(newTestDataset(t, seq), 5, WithBinPolicy(PolicyClamp))
		require.NoError(t, err)
		require.Equal(t, [][]int{{1, 1}, {0, 0}, {0, 1}}, out.Sequences[0].Counts)
	})

	t.Run("Drop", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		out, err := Aggregate(newTestDataset(t, seq), 5, WithBinPolicy(PolicyDrop), WithLogger(zap.New(core)))
		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1}, {0, 0}, {0, 0}}, out.Sequences[0].Counts)
		require.Equal(t, 1, logs.Len())
		require.EqualValues(t, 2, logs.All()[0].ContextMap()["dropped"])
	})
}

func TestAggregateErrors(t *testing.T) {
	ds := newTestDataset(t, exampleSequence())

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Aggregate(ds, dt)
		require.ErrorIs(t, err, errs.ErrInvalidBinWidth)
	}

	out, err := Aggregate(ds, 5)
	require.NoError(t, err)
	_, err = Aggregate(out, 5)
	require.ErrorIs(t, err, errs.ErrAlreadyAggregated)

	_, err = Aggregate(nil, 5)
	require.ErrorIs(t, err, errs.ErrNilDataset)

	_, err = New(WithBinPolicy(BinPolicy(9)))
	require.ErrorIs(t, err, errs.ErrInvalidBinPolicy)
	_, err = New(WithBinAssignment(BinAssignment(9)))
	require.ErrorIs(t, err, errs.ErrInvalidBinAssignment)
	_, err = New(WithProgressEvery(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestAggregateBinLimits(t *testing.T) {
	t.Run("TinyWidth", func(t *testing.T) {
		ds := newTestDataset(t, exampleSequence())
		_, err := Aggregate(ds, 1e-300)
		require.ErrorIs(t, err, errs.ErrInvalidBinWidth)

		_, err = Aggregate(ds, 10.0/MaxBins)
		require.ErrorIs(t, err, errs.ErrInvalidBinWidth)
	})

	t.Run("NonFiniteWindow", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(-1)} {
			ds := newTestDataset(t, exampleSequence())
			ds.Sequences[0].TStart = bad
			_, err := Aggregate(ds, 1)
			require.ErrorIs(t, err, errs.ErrInvalidWindow)
		}

		ds := newTestDataset(t, exampleSequence())
		ds.Sequences[0].TStop = math.NaN()
		_, err := Aggregate(ds, 1)
		require.ErrorIs(t, err, errs.ErrInvalidWindow)
	})

	t.Run("NonFiniteEventTime", func(t *testing.T) {
		ds := newTestDataset(t, exampleSequence())
		ds.Sequences[0].Times[3] = math.Inf(1)

		_, err := Aggregate(ds, 5)
		require.ErrorIs(t, err, errs.ErrBinOutOfRange)

		out, err := Aggregate(ds, 5, WithBinPolicy(PolicyDrop))
		require.NoError(t, err)
		require.Equal(t, [][]int{{1, 0}, {1, 1}, {0, 0}}, out.Sequences[0].Counts)

		out, err = Aggregate(ds, 5, WithBinPolicy(PolicyClamp))
		require.NoError(t, err)
		require.Equal(t, [][]int{{1, 0}, {1, 1}, {0, 1}}, out.Sequences[0].Counts)
	})
}

func TestParse(t *testing.T) {
	p, err := ParseBinPolicy("")
	require.NoError(t, err)
	require.Equal(t, PolicyRaise, p)
	p, err = ParseBinPolicy("DROP")
	require.NoError(t, err)
	require.Equal(t, PolicyDrop, p)
	_, err = ParseBinPolicy("wrap")
	require.ErrorIs(t, err, errs.ErrInvalidBinPolicy)

	a, err := ParseBinAssignment("floor")
	require.NoError(t, err)
	require.Equal(t, AssignFloor, a)
	_, err = ParseBinAssignment("ceil")
	require.ErrorIs(t, err, errs.ErrInvalidBinAssignment)
	require.Equal(t, "clamp", PolicyClamp.String())
}
