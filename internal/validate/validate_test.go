package validate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"carwo/internal/validate"
)

func TestQTrimsAndCaps(t *testing.T) {
	if got := validate.Q("  khamiis  "); got != "khamiis" {
		t.Fatalf("want trimmed term, got %q", got)
	}
	long := strings.Repeat("a", 80)
	if got := validate.Q(long); len(got) != 50 {
		t.Fatalf("want 50-byte cap, got %d bytes", len(got))
	}
}

func TestQCutsOnRuneBoundary(t *testing.T) {
	// 3-byte runes: byte 50 falls inside the 17th rune, so a plain byte
	// cut would leave a broken trailing sequence
	long := strings.Repeat("€", 20)
	got := validate.Q(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated term is not valid UTF-8: %q", got)
	}
	if len(got) > 50 {
		t.Fatalf("cap exceeded: %d bytes", len(got))
	}
	if got != strings.Repeat("€", 16) {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestQtyFloorAndCap(t *testing.T) {
	for in, want := range map[string]int{"": 1, "0": 1, "-3": 1, "junk": 1, "2": 2, "999": 50} {
		if got := validate.Qty(in); got != want {
			t.Fatalf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestSizeDefaultsToM(t *testing.T) {
	for in, want := range map[string]string{"": "M", "xl": "XL", "XXL": "XXL", "huge": "M"} {
		if got := validate.Size(in); got != want {
			t.Fatalf("Size(%q) = %q, want %q", in, got, want)
		}
	}
}
