package compose

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/options"
)

// DefaultProgressEvery is the default number of sequences between two
// progress log lines.
const DefaultProgressEvery = 1000

// Composer stitches and superposes datasets.
//
// The composer owns its random source: every Stitch or Superpose call
// advances it, so two composers created with the same seed produce the same
// outputs for the same sequence of calls. A Composer is not safe for
// concurrent use.
type Composer struct {
	rng           *rand.Rand
	logger        *zap.Logger
	progressEvery int
}

// Option configures a Composer.
type Option = options.Option[*Composer]

// New creates a composer. Without WithSeed or WithRand the random source is
// seeded from the runtime.
func New(opts ...Option) (*Composer, error) {
	c := &Composer{
		logger:        zap.NewNop(),
		progressEvery: DefaultProgressEvery,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return c, nil
}

// WithSeed seeds the random source deterministically.
func WithSeed(seed uint64) Option {
	return options.NoError(func(c *Composer) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	})
}

// WithRand uses r as the random source. The composer takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return options.New(func(c *Composer) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", errs.ErrInvalidOption)
		}
		c.rng = r

		return nil
	})
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Composer) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithProgressEvery sets how many sequences are processed between two
// debug progress lines.
func WithProgressEvery(n int) Option {
	return options.New(func(c *Composer) error {
		if n <= 0 {
			return fmt.Errorf("%w: progress interval %d", errs.ErrInvalidOption, n)
		}
		c.progressEvery = n

		return nil
	})
}

// combineFunc builds the output sequence from target a and candidate b.
type combineFunc func(a, b *dataset.Sequence) dataset.Sequence

// compose runs the shared pairing loop of Stitch and Superpose.
func (c *Composer) compose(op string, a, b *dataset.Dataset, mode Mode, combine combineFunc) (*dataset.Dataset, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: first %w", op, errs.ErrNilDataset)
	}
	if err := check(a, b, mode); err != nil {
		return c.fault(op, a, err)
	}

	c.logger.Info(mode.String()+" "+op+" is applied",
		zap.Int("targets", a.Len()),
		zap.Int("candidates", b.Len()),
	)

	start := time.Now()
	pick := c.pairerFor(mode, b.Sequences)
	out := make([]dataset.Sequence, len(a.Sequences))
	for i := range a.Sequences {
		target := &a.Sequences[i]
		j := pick(i, target)
		out[i] = combine(target, &b.Sequences[j])

		if i%c.progressEvery == 0 {
			c.logger.Debug("sequences processed",
				zap.String("operation", op),
				zap.Int("count", i),
				zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
			)
		}
	}

	return a.WithSequences(out), nil
}

// composeByName parses the mode name first; an unknown name is a
// recoverable fault like any other.
func (c *Composer) composeByName(op string, a, b *dataset.Dataset, name string, combine combineFunc) (*dataset.Dataset, error) {
	mode, err := ParseMode(name)
	if err != nil {
		if a == nil {
			return nil, fmt.Errorf("%s: first %w", op, errs.ErrNilDataset)
		}

		return c.fault(op, a, err)
	}

	return c.compose(op, a, b, mode, combine)
}

// fault logs a recovered composition fault and returns a copy of a.
func (c *Composer) fault(op string, a *dataset.Dataset, err error) (*dataset.Dataset, error) {
	c.logger.Warn("the first dataset is returned unchanged",
		zap.String("operation", op),
		zap.Error(err),
	)

	return a.Clone(), fmt.Errorf("%s: %w", op, err)
}

func check(a, b *dataset.Dataset, mode Mode) error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: second dataset is nil", errs.ErrNoCandidates)
	case !a.Compatible(b):
		return errs.ErrIncompatibleDatasets
	case !mode.IsValid():
		return fmt.Errorf("%w: %s", errs.ErrUnknownMode, mode)
	case a.IsAggregated() || b.IsAggregated():
		return errs.ErrAlreadyAggregated
	case b.Len() == 0:
		return errs.ErrNoCandidates
	}

	return nil
}
