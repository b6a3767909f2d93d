package version

import (
	"strings"
	"testing"
)

func TestStringCarriesAppNameAndVersion(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "tpp ") {
		t.Fatalf("version string %q missing app prefix", s)
	}
	if !strings.Contains(s, Version) {
		t.Fatalf("version string %q missing version %q", s, Version)
	}
}
