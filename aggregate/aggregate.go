package aggregate

import (
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/options"
)

const defaultProgressEvery = 1000

// MaxBins is the largest number of bins a single sequence may be split into.
const MaxBins = 1 << 24

// Aggregator converts per-event sequences into fixed-width binned counts.
//
// An Aggregator holds only configuration and is safe for concurrent use.
type Aggregator struct {
	logger        *zap.Logger
	policy        BinPolicy
	assignment    BinAssignment
	progressEvery int
}

// Option configures an Aggregator.
type Option = options.Option[*Aggregator]

// New creates an aggregator. Defaults are PolicyRaise and AssignRound.
func New(opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		logger:        zap.NewNop(),
		policy:        PolicyRaise,
		assignment:    AssignRound,
		progressEvery: defaultProgressEvery,
	}
	if err := options.Apply(a, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(a *Aggregator) {
		if logger == nil {
			logger = zap.NewNop()
		}
		a.logger = logger
	})
}

// WithBinPolicy sets the out-of-range policy.
func WithBinPolicy(p BinPolicy) Option {
	return options.New(func(a *Aggregator) error {
		switch p {
		case PolicyRaise, PolicyClamp, PolicyDrop:
			a.policy = p
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidBinPolicy, p)
		}
	})
}

// WithBinAssignment sets how event times map to bins.
func WithBinAssignment(b BinAssignment) Option {
	return options.New(func(a *Aggregator) error {
		switch b {
		case AssignRound, AssignFloor:
			a.assignment = b
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidBinAssignment, b)
		}
	})
}

// WithProgressEvery sets how many sequences are processed between two
// debug progress lines.
func WithProgressEvery(n int) Option {
	return options.New(func(a *Aggregator) error {
		if n <= 0 {
			return fmt.Errorf("%w: progress interval %d", errs.ErrInvalidOption, n)
		}
		a.progressEvery = n

		return nil
	})
}

// Aggregate is a shortcut for New(opts...) followed by Aggregate(ds, dt).
func Aggregate(ds *dataset.Dataset, dt float64, opts ...Option) (*dataset.Dataset, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return a.Aggregate(ds, dt)
}

// Aggregate converts every sequence of ds into binned counts of width dt.
//
// A sequence gets numBins = round((TStop-TStart)/dt) + 1 bins. Bin n ends at
// TStart + (n+1)·dt; the bin ends replace Times and the numBins × numTypes
// count matrix replaces Events. Features, labels, windows, names and the
// vocabulary pass through unchanged.
func (a *Aggregator) Aggregate(ds *dataset.Dataset, dt float64) (*dataset.Dataset, error) {
	if ds == nil {
		return nil, errs.ErrNilDataset
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidBinWidth, dt)
	}
	if ds.IsAggregated() {
		return nil, errs.ErrAlreadyAggregated
	}

	a.logger.Info("aggregation of event sequences is applied",
		zap.Float64("dt", dt),
		zap.Stringer("policy", a.policy),
		zap.Stringer("assignment", a.assignment),
	)

	start := time.Now()
	numTypes := ds.NumTypes()
	out := make([]dataset.Sequence, len(ds.Sequences))
	dropped := 0
	for i := range ds.Sequences {
		seq, n, err := a.aggregateSequence(&ds.Sequences[i], numTypes, dt)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		out[i] = seq
		dropped += n

		if i%a.progressEvery == 0 {
			a.logger.Debug("sequences aggregated",
				zap.Int("count", i),
				zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
			)
		}
	}

	if dropped > 0 {
		a.logger.Warn("events outside the bin range were dropped", zap.Int("dropped", dropped))
	}

	return ds.WithSequences(out), nil
}

// aggregateSequence bins one sequence and reports how many events the drop
// policy skipped.
func (a *Aggregator) aggregateSequence(seq *dataset.Sequence, numTypes int, dt float64) (dataset.Sequence, int, error) {
	if !isFinite(seq.TStart) || !isFinite(seq.TStop) {
		return dataset.Sequence{}, 0, fmt.Errorf("%w: window [%v, %v] is not finite", errs.ErrInvalidWindow, seq.TStart, seq.TStop)
	}
	if seq.TStart > seq.TStop {
		return dataset.Sequence{}, 0, fmt.Errorf("%w: %v > %v", errs.ErrInvalidWindow, seq.TStart, seq.TStop)
	}
	span := math.RoundToEven(seq.Duration() / dt)
	if !(span >= 0 && span < MaxBins) {
		return dataset.Sequence{}, 0, fmt.Errorf("%w: %v over a window of %v needs more than %d bins", errs.ErrInvalidBinWidth, dt, seq.Duration(), MaxBins)
	}
	numBins := int(span) + 1

	times := make([]float64, numBins)
	for n := range times {
		times[n] = seq.TStart + float64(n+1)*dt
	}

	counts := make([][]int, numBins)
	for n := range counts {
		counts[n] = make([]int, numTypes)
	}

	dropped := 0
	for k, t := range seq.Times {
		c := seq.Events[k]
		if c < 0 || c >= numTypes {
			return dataset.Sequence{}, 0, fmt.Errorf("event %d: %w: type %d", k, errs.ErrUnknownEventType, c)
		}

		n := a.binIndex(t, seq.TStart, dt)
		if n < 0 || n >= numBins {
			switch a.policy {
			case PolicyClamp:
				n = min(max(n, 0), numBins-1)
			case PolicyDrop:
				dropped++
				continue
			default:
				return dataset.Sequence{}, 0, fmt.Errorf("event %d at %v: %w: bin %d of %d", k, t, errs.ErrBinOutOfRange, n, numBins)
			}
		}
		counts[n][c]++
	}

	out := dataset.Sequence{
		Times:   times,
		Counts:  counts,
		Feature: slices.Clone(seq.Feature),
		TStart:  seq.TStart,
		TStop:   seq.TStop,
	}
	if seq.Label != nil {
		out.Label = dataset.LabelOf(*seq.Label)
	}

	return out, dropped, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// binIndex saturates offsets beyond MaxBins, NaN maps to -1; both then go
// through the bin policy.
func (a *Aggregator) binIndex(t, tStart, dt float64) int {
	x := (t - tStart) / dt
	switch {
	case math.IsNaN(x), x < -MaxBins:
		return -1
	case x > MaxBins:
		return MaxBins
	}
	if a.assignment == AssignFloor {
		return int(math.Floor(x))
	}

	return int(math.RoundToEven(x))
}
