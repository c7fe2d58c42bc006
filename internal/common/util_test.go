package common

import (
	"regexp"
	"testing"
)

func TestMakeIDSuffix_Alphanumeric(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]+$`)
	s := MakeIDSuffix()
	if len(s) != suffixLen {
		t.Fatalf("unexpected suffix length: %d", len(s))
	}
	if !pattern.MatchString(s) {
		t.Fatalf("suffix %q is not alphanumeric", s)
	}
}

func TestMakeIDSuffix_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := MakeIDSuffix()
		if seen[s] {
			t.Fatalf("duplicate suffix %q", s)
		}
		seen[s] = true
	}
}
