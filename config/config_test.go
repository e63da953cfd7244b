package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	defer os.Unsetenv("DECAYSNAKE_TEST_INT")

	require.Equal(t, 7, getEnvInt("DECAYSNAKE_TEST_INT", 7))

	os.Setenv("DECAYSNAKE_TEST_INT", "42")
	require.Equal(t, 42, getEnvInt("DECAYSNAKE_TEST_INT", 7))

	os.Setenv("DECAYSNAKE_TEST_INT", "not-a-number")
	require.Equal(t, 7, getEnvInt("DECAYSNAKE_TEST_INT", 7))
}

func TestPopLimiter(t *testing.T) {
	l := PopLimiter()
	require.Equal(t, PopRate, l.Limit())
	require.Equal(t, PopBurstRate, l.Burst())
}
