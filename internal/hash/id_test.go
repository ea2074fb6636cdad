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
		{"column name", "temperature_celsius", ID("temperature_celsius")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}

	require.NotEqual(t, ID("temperature"), ID("Temperature"))
}

func TestSum64(t *testing.T) {
	data := []byte("snapshot payload bytes")
	require.Equal(t, ID(string(data)), Sum64(data))
	require.Equal(t, Sum64(data), Sum64(data))
	require.NotEqual(t, Sum64(data), Sum64(data[:len(data)-1]))
}
