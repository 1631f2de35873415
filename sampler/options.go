package sampler

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/options"
)

type config struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// Option configures a sampler.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{logger: zap.NewNop()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg, nil
}

// WithSeed seeds the random source used for history padding.
func WithSeed(seed uint64) Option {
	return options.NoError(func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	})
}

// WithRand uses r as the random source for history padding.
func WithRand(r *rand.Rand) Option {
	return options.New(func(c *config) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", errs.ErrInvalidOption)
		}
		c.rng = r

		return nil
	})
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
