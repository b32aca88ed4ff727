package ui

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	msg := Error("factorial is not defined for negative numbers")
	require.Contains(t, msg, "Error: factorial is not defined for negative numbers")
}

func TestSuccess(t *testing.T) {
	msg := Success("The factorial of 5 is 120")
	require.Contains(t, msg, "The factorial of 5 is 120")
}

func TestColorize(t *testing.T) {
	colored := Colorize("test", colorRed)
	if runtime.GOOS == "windows" {
		require.Equal(t, "test", colored)
		return
	}
	require.Equal(t, colorRed+"test"+colorReset, colored)
}
