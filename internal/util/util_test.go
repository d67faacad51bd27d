package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{name: "minutes", input: "15m", expected: 15 * time.Minute},
		{name: "days", input: "7d", expected: 7 * 24 * time.Hour},
		{name: "days and hours", input: "1d12h", expected: 36 * time.Hour},
		{name: "compound go duration", input: "1h30m", expected: 90 * time.Minute},
		{name: "bare milliseconds", input: "60000", expected: time.Minute},
		{name: "surrounding spaces", input: " 2d ", expected: 48 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "abc", "xd", "-1d", "1d-2h", "7dd"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDuration(input)
			assert.Error(t, err)
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "otp window", duration: 15 * time.Minute, expected: "15m0s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "days", duration: 7 * 24 * time.Hour, expected: "7d0h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
