package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", " , ,")
	if got := listEnvOrDefault("LIST_TEST", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected default for blank entries, got %v", got)
	}

	t.Setenv("LIST_TEST", "a,b")
	if got := listEnvOrDefault("LIST_TEST", nil); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestFloatEnvOrDefault(t *testing.T) {
	t.Setenv("FLOAT_TEST", "abc")
	if got := floatEnvOrDefault("FLOAT_TEST", 1.5); got != 1.5 {
		t.Fatalf("expected default on invalid float, got %v", got)
	}
	t.Setenv("FLOAT_TEST", "0.25")
	if got := floatEnvOrDefault("FLOAT_TEST", 1.5); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}
