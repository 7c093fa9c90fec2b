package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func resolveLang(t *testing.T, target, acceptLanguage string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	router := gin.New()
	router.Use(Language([]string{"vi", "en", "zh", "zh-TW", "th"}, "vi"))
	router.GET("/", func(c *gin.Context) {
		got = Lang(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLanguage_QueryParamWins(t *testing.T) {
	if got := resolveLang(t, "/?lang=en", "th"); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
}

func TestLanguage_AcceptLanguageFallback(t *testing.T) {
	if got := resolveLang(t, "/", "th,en;q=0.8"); got != "th" {
		t.Fatalf("expected th, got %q", got)
	}
	if got := resolveLang(t, "/", "en-US,en;q=0.9"); got != "en" {
		t.Fatalf("expected region code to collapse to en, got %q", got)
	}
	if got := resolveLang(t, "/", "zh-TW;q=0.9"); got != "zh-TW" {
		t.Fatalf("expected zh-TW to survive, got %q", got)
	}
}

func TestLanguage_UnsupportedFallsBackToDefault(t *testing.T) {
	if got := resolveLang(t, "/?lang=fr", ""); got != "vi" {
		t.Fatalf("expected default vi, got %q", got)
	}
	if got := resolveLang(t, "/", ""); got != "vi" {
		t.Fatalf("expected default vi with no hints, got %q", got)
	}
}
