package logging

import (
	"regexp"
	"strings"
)

// RedactPattern is a custom redaction rule.
type RedactPattern struct {
	// Name identifies the pattern.
	Name string

	// Pattern is the regular expression to match.
	Pattern string

	// Replacement is substituted for each match.
	Replacement string
}

// Redactor removes secrets from log fields before they are written.
type Redactor struct {
	patterns []*redactPattern
}

type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Built-in redaction pattern names.
const (
	PatternAPIKey      = "api_key"
	PatternBearerToken = "bearer_token"
	PatternBasicAuth   = "basic_auth"
)

// sensitiveKeys are log keys whose values are always masked wholesale.
var sensitiveKeys = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"api_key":       true,
	"apikey":        true,
	"token":         true,
	"password":      true,
	"secret":        true,
}

// NewRedactor creates a Redactor with the built-in and custom patterns.
func NewRedactor(custom []RedactPattern) *Redactor {
	r := &Redactor{}
	r.addDefaultPatterns()

	for _, p := range custom {
		regex, err := regexp.Compile(p.Pattern)
		if err != nil {
			continue
		}
		r.patterns = append(r.patterns, &redactPattern{
			name:        p.Name,
			regex:       regex,
			replacement: p.Replacement,
		})
	}
	return r
}

func (r *Redactor) addDefaultPatterns() {
	defaults := []struct {
		name        string
		pattern     string
		replacement string
	}{
		{PatternBearerToken, `Bearer\s+[a-zA-Z0-9\-._~+/]+=*`, "Bearer ***"},
		{PatternBasicAuth, `Basic\s+[a-zA-Z0-9+/]+=*`, "Basic ***"},
		{PatternAPIKey, `api[-_]?key[-_:=]\s*[a-zA-Z0-9]+`, "api_key=***"},
	}
	for _, d := range defaults {
		r.patterns = append(r.patterns, &redactPattern{
			name:        d.name,
			regex:       regexp.MustCompile(d.pattern),
			replacement: d.replacement,
		})
	}
}

// Redact applies every pattern to a string value.
func (r *Redactor) Redact(value string) string {
	for _, p := range r.patterns {
		value = p.regex.ReplaceAllString(value, p.replacement)
	}
	return value
}

// RedactArgs redacts the values of key-value log arguments. Values under
// sensitive keys are masked entirely; other string values are pattern
// scrubbed.
func (r *Redactor) RedactArgs(args ...any) []any {
	out := make([]any, len(args))
	copy(out, args)

	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		if sensitiveKeys[strings.ToLower(key)] {
			out[i+1] = "***"
			continue
		}
		if s, ok := out[i+1].(string); ok {
			out[i+1] = r.Redact(s)
		}
	}
	return out
}
