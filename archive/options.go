package archive

import (
	"fmt"

	"github.com/arloliu/evseq/endian"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/format"
	"github.com/arloliu/evseq/internal/options"
)

// EncoderConfig holds the archive encoder settings.
type EncoderConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

// Option configures the archive encoder.
type Option = options.Option[*EncoderConfig]

func newEncoderConfig(opts []Option) (*EncoderConfig, error) {
	cfg := &EncoderConfig{
		compression: format.CompressionZstd,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression sets the payload codec. Zstd is the default.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *EncoderConfig) error {
		if !comp.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(comp))
		}
		c.compression = comp

		return nil
	})
}

// WithLittleEndian sets the encoder to use little-endian byte order.
// It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian sets the encoder to use big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}
