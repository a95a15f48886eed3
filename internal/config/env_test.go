package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("existing env var", func(t *testing.T) {
		t.Setenv("TT_TEST_KEY", "test_value")
		assert.Equal(t, "test_value", GetEnv("TT_TEST_KEY", "default"))
	})

	t.Run("empty env var falls back", func(t *testing.T) {
		t.Setenv("TT_TEST_KEY", "")
		assert.Equal(t, "default", GetEnv("TT_TEST_KEY", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		expected int
	}{
		{name: "valid integer", value: "42", fallback: 0, expected: 42},
		{name: "negative integer", value: "-10", fallback: 0, expected: -10},
		{name: "invalid integer", value: "not_a_number", fallback: 10, expected: 10},
		{name: "missing", value: "", fallback: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TT_TEST_INT", tt.value)
			assert.Equal(t, tt.expected, GetEnvInt("TT_TEST_INT", tt.fallback))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TT_TEST_FLOAT", "1.5")
	assert.Equal(t, 1.5, GetEnvFloat("TT_TEST_FLOAT", 2))

	t.Setenv("TT_TEST_FLOAT", "abc")
	assert.Equal(t, 2.0, GetEnvFloat("TT_TEST_FLOAT", 2))
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("valid duration", func(t *testing.T) {
		t.Setenv("TT_TEST_DURATION", "1h30m15s")
		expected := 1*time.Hour + 30*time.Minute + 15*time.Second
		assert.Equal(t, expected, GetEnvDuration("TT_TEST_DURATION", time.Second))
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("TT_TEST_DURATION", "invalid")
		assert.Equal(t, 5*time.Second, GetEnvDuration("TT_TEST_DURATION", 5*time.Second))
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{name: "true value", envValue: "true", defaultValue: false, expected: true},
		{name: "false value", envValue: "false", defaultValue: true, expected: false},
		{name: "1 as true", envValue: "1", defaultValue: false, expected: true},
		{name: "0 as false", envValue: "0", defaultValue: true, expected: false},
		{name: "invalid value", envValue: "invalid", defaultValue: true, expected: true},
		{name: "missing env var", envValue: "", defaultValue: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TT_TEST_BOOL", tt.envValue)
			assert.Equal(t, tt.expected, GetEnvBool("TT_TEST_BOOL", tt.defaultValue))
		})
	}
}
