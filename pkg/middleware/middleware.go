package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menu-bridge/pkg/logger"
)

const langKey = "lang"

// Language resolves the request language from the `lang` query parameter,
// falling back to the Accept-Language header and then the default. Codes
// not in the supported set resolve to the default rather than failing;
// handlers can rely on Lang(c) always returning a supported code.
func Language(supported []string, fallback string) gin.HandlerFunc {
	set := make(map[string]bool, len(supported))
	for _, l := range supported {
		set[l] = true
	}

	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = primaryAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if !set[lang] {
			lang = fallback
		}
		c.Set(langKey, lang)
		c.Next()
	}
}

// Lang returns the language resolved by the Language middleware.
func Lang(c *gin.Context) string {
	return c.GetString(langKey)
}

func primaryAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.TrimSpace(strings.Split(header, ",")[0])
	first = strings.Split(first, ";")[0]
	// Region-qualified codes other than zh-TW collapse to their base.
	if first == "zh-TW" {
		return first
	}
	if i := strings.Index(first, "-"); i > 0 {
		first = first[:i]
	}
	return first
}

// RequestLogger logs one line per request with latency and status.
func RequestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("lang", Lang(c)),
		)
	}
}

// CORS allows the storefront origins configured for the deployment.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language"}
	return cors.New(cfg)
}
