package i18n

import (
	"strings"
	"testing"
)

func TestT(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	got := T("en", "product_not_found", map[string]interface{}{"ID": int64(42)})
	if !strings.Contains(got, "42") {
		t.Fatalf("expected interpolated ID, got %q", got)
	}

	vi := T("vi", "cache_reloaded", nil)
	en := T("en", "cache_reloaded", nil)
	if vi == en {
		t.Fatalf("expected distinct translations, got %q twice", vi)
	}

	// Unknown IDs fall back to the ID itself.
	if got := T("en", "no_such_message", nil); got != "no_such_message" {
		t.Fatalf("expected fallback to message ID, got %q", got)
	}

	// Unsupported languages fall back to the bundle default.
	if got := T("fr", "cache_cleared", nil); got == "" {
		t.Fatal("expected a non-empty fallback")
	}
}
