// Package masking scrubs credential material from worker command output
// before it is persisted or streamed. Workers run arbitrary shell
// commands on remote hosts; their stdout routinely contains tokens,
// connection strings, and key files that must never land in the run
// timeline.
package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is one masking rule: everything the regex matches is replaced.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns cover the credential shapes that show up in command
// output across cloud CLIs, package managers, and dotenv dumps. The
// replacement keeps the key name visible so the supervisor can still
// reason about what the output was.
var builtinPatterns = []Pattern{
	{
		Name:        "pem_private_key",
		Pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		Replacement: "***MASKED_PRIVATE_KEY***",
	},
	{
		Name:        "bearer_token",
		Pattern:     `(?i)bearer\s+[A-Za-z0-9\-._~+/]{16,}=*`,
		Replacement: "Bearer ***MASKED***",
	},
	{
		Name:        "aws_access_key",
		Pattern:     `\b(AKIA|ASIA)[0-9A-Z]{16}\b`,
		Replacement: "***MASKED_AWS_KEY***",
	},
	{
		Name:        "github_token",
		Pattern:     `\bgh[pousr]_[A-Za-z0-9]{20,}\b`,
		Replacement: "***MASKED_GITHUB_TOKEN***",
	},
	{
		Name:        "key_value_secret",
		Pattern:     `(?i)\b([A-Z0-9_]*(?:password|passwd|secret|token|api_key|apikey|access_key)[A-Z0-9_]*)(\s*[=:]\s*)("[^"\n]{4,}"|'[^'\n]{4,}'|[^\s"']{4,})`,
		Replacement: `$1$2***MASKED***`,
	},
	{
		Name:        "url_credentials",
		Pattern:     `(?i)\b([a-z][a-z0-9+.-]*://)[^\s/:@]+:[^\s/@]+@`,
		Replacement: `$1***MASKED***@`,
	},
}

// Service applies masking rules to text. Created once at startup;
// thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the built-in patterns plus any custom ones.
// Invalid patterns are logged and skipped, never fatal.
func NewService(custom ...Pattern) *Service {
	s := &Service{}
	for _, p := range append(builtinPatterns, custom...) {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.Name,
			Regex:       compiled,
			Replacement: p.Replacement,
		})
	}
	return s
}

// Mask applies every pattern to the text. Order matters: structural
// patterns (PEM blocks) run before line-level ones so a key file is
// masked whole instead of line by line.
func (s *Service) Mask(text string) string {
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}
