package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSocketURL(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{"http://localhost:3005", "ws://localhost:3005/socket/abc"},
		{"https://engine.example.com/", "wss://engine.example.com/socket/abc"},
		{"localhost:3005", "ws://localhost:3005/socket/abc"},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, socketURL(test.addr, "abc"), test.addr)
	}
}
