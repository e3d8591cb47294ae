package api

import (
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxTextField bounds free-text profile fields.
const maxTextField = 500

// SecurityMiddleware sets the response headers every endpoint carries.
func SecurityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// QuerySanitizationMiddleware rewrites query values through sanitizeInput.
func QuerySanitizationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			clean := make(url.Values)
			for key, values := range r.URL.Query() {
				for _, v := range values {
					clean.Add(key, sanitizeInput(v))
				}
			}
			r.URL.RawQuery = clean.Encode()
		}
		next.ServeHTTP(w, r)
	})
}

var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
	regexp.MustCompile(`(?i)<(iframe|object|embed|link|meta|input)[^>]*>`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:[^,]*base64`),
}

// sanitizeInput strips markup that has no business in a profile field and
// escapes what remains. Passwords never pass through here.
func sanitizeInput(input string) string {
	if input == "" {
		return input
	}
	out := input
	for _, p := range dangerousPatterns {
		out = p.ReplaceAllString(out, "")
	}
	return html.EscapeString(strings.TrimSpace(out))
}

// sanitizeField sanitizes input and reports whether it fits within limit characters.
func sanitizeField(input string, limit int) (string, bool) {
	out := sanitizeInput(input)
	return out, utf8.RuneCountInString(out) <= limit
}

func sanitizeList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if s := sanitizeInput(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
