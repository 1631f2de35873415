package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
			require.Equal(t, tt.id, Checksum([]byte(tt.data)))
		})
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		names := []string{"login", "purchase", "logout"}
		require.Equal(t, Fingerprint(names), Fingerprint([]string{"login", "purchase", "logout"}))
	})

	t.Run("OrderSensitive", func(t *testing.T) {
		require.NotEqual(t, Fingerprint([]string{"a", "b"}), Fingerprint([]string{"b", "a"}))
	})

	t.Run("BoundarySensitive", func(t *testing.T) {
		require.NotEqual(t, Fingerprint([]string{"ab", "c"}), Fingerprint([]string{"a", "bc"}))
	})

	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, Fingerprint(nil), Fingerprint([]string{}))
	})
}
