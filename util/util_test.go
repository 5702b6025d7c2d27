package util

import (
	"os"
	"testing"
)

func TestGetEnvVariableReturnsValue(t *testing.T) {
	os.Setenv("MLB_STATS_TEST_VAR", "statsapi")
	defer os.Unsetenv("MLB_STATS_TEST_VAR")

	if got := GetEnvVariable("MLB_STATS_TEST_VAR"); got != "statsapi" {
		t.Fatalf("expected statsapi, got %s", got)
	}
}

func TestGetEnvVariablePanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing variable")
		}
	}()
	GetEnvVariable("MLB_STATS_MISSING_VAR")
}

func TestGetEnvVariableWithDefaultFallsBack(t *testing.T) {
	os.Unsetenv("MLB_STATS_TEST_VAR")

	if got := GetEnvVariableWithDefault("MLB_STATS_TEST_VAR", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
