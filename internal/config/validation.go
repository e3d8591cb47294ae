package config

import (
	"net/url"
	"strings"
)

// ValidationIssue represents a configuration validation issue.
type ValidationIssue struct {
	Field    string
	Message  string
	Severity string // "error", "warning", "info"
}

// ValidationResult holds the results of inter-field validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// AddError adds an error-level issue.
func (v *ValidationResult) AddError(field, message string) {
	v.Issues = append(v.Issues, ValidationIssue{Field: field, Message: message, Severity: "error"})
	v.Valid = false
}

// AddWarning adds a warning-level issue.
func (v *ValidationResult) AddWarning(field, message string) {
	v.Issues = append(v.Issues, ValidationIssue{Field: field, Message: message, Severity: "warning"})
}

// AddInfo adds an informational issue.
func (v *ValidationResult) AddInfo(field, message string) {
	v.Issues = append(v.Issues, ValidationIssue{Field: field, Message: message, Severity: "info"})
}

func (v *ValidationResult) filter(severity string) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range v.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Errors returns only error-level issues.
func (v *ValidationResult) Errors() []ValidationIssue { return v.filter("error") }

// Warnings returns only warning-level issues.
func (v *ValidationResult) Warnings() []ValidationIssue { return v.filter("warning") }

var startRoutes = map[string]bool{
	"/":                true,
	"/auth":            true,
	"/signup/creator":  true,
	"/signup/brand":    true,
	"/forgot-password": true,
	"/student-verify":  true,
}

// ValidateInterField performs cross-field validation on the configuration.
func (c Config) ValidateInterField() ValidationResult {
	result := ValidationResult{Valid: true}

	if c.BackendURL == "" {
		result.AddInfo("backend_url", "no backend configured; auth calls run in offline mode")
	} else if u, err := url.Parse(c.BackendURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		result.AddError("backend_url", "must be an absolute http(s) URL")
	} else if u.Scheme == "http" && !isLocalHost(u.Hostname()) {
		result.AddWarning("backend_url", "credentials will be sent over plain http")
	}

	if c.SiteURL != "" {
		if u, err := url.Parse(c.SiteURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			result.AddError("site_url", "must be an absolute http(s) URL")
		}
	}

	switch c.Theme {
	case "light", "dark", "system", "":
	default:
		result.AddError("theme", "must be one of: light, dark, system")
	}

	validLogLevels := map[string]bool{"DEBUG": true, "INFO": true, "WARNING": true, "WARN": true, "ERROR": true}
	if !validLogLevels[strings.ToUpper(c.LogLevel)] {
		result.AddError("log_level", "must be one of: DEBUG, INFO, WARNING, ERROR")
	}

	if c.StartRoute != "" && !startRoutes[c.StartRoute] &&
		!strings.HasPrefix(c.StartRoute, "/creator/") && !strings.HasPrefix(c.StartRoute, "/brand/") {
		result.AddWarning("start_route", "unknown route; the client will show the not found screen")
	}
	if strings.HasPrefix(c.StartRoute, "/creator/") || strings.HasPrefix(c.StartRoute, "/brand/") {
		result.AddInfo("start_route", "dashboards open signed out when started directly")
	}

	if c.UI.NarrowWidth != nil {
		switch w := *c.UI.NarrowWidth; {
		case w <= 0:
			result.AddError("ui.narrow_width", "must be > 0")
		case w < 40:
			result.AddWarning("ui.narrow_width", "very small breakpoint; the sidebar will rarely collapse")
		case w > 200:
			result.AddWarning("ui.narrow_width", "very large breakpoint; most terminals will always use the overlay")
		}
	}
	if c.UI.ToastTTLMs != nil && *c.UI.ToastTTLMs < 0 {
		result.AddError("ui.toast_ttl_ms", "must be >= 0")
	}
	if c.HTTP.TimeoutSeconds != nil {
		if *c.HTTP.TimeoutSeconds <= 0 {
			result.AddError("http.timeout_seconds", "must be > 0")
		} else if *c.HTTP.TimeoutSeconds > 120 {
			result.AddWarning("http.timeout_seconds", "timeouts above two minutes leave the form waiting a long time")
		}
	}
	if c.BackendURL == "" && c.HTTP.TimeoutSeconds != nil && *c.HTTP.TimeoutSeconds != DefaultTimeoutSeconds {
		result.AddInfo("http.timeout_seconds", "has no effect without backend_url")
	}

	return result
}

func isLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
