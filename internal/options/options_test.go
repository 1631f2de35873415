package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width float64
	name  string
	calls []string
}

func withWidth(w float64) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w <= 0 {
			return errors.New("width must be positive")
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("AppliesInOrder", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withWidth(2), withName("b"))
		require.NoError(t, err)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, 2.0, cfg.width)
		require.Equal(t, []string{"name", "width", "name"}, cfg.calls)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withWidth(-1), withName("b"))
		require.EqualError(t, err, "width must be positive")
		require.Equal(t, "a", cfg.name)
		require.Equal(t, []string{"name"}, cfg.calls)
	})

	t.Run("SkipsNil", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})

	t.Run("NoOptions", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}
