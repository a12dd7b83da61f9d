package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The RapidAPI key travels in x-rapidapi-key on every outbound
// call. The set is shared with the HTTP middleware's RedactHeaders.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"x-rapidapi-key":      true,
	"cookie":              true,
	"set-cookie":          true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// rapidAPIKeyPattern matches the shape of a RapidAPI application key
// ("...msh...jsn...") when it leaks into a free-text value such as an
// upstream error message.
var rapidAPIKeyPattern = regexp.MustCompile(`\b[0-9a-zA-Z]{8,}msh[0-9a-zA-Z]{8,}jsn[0-9a-zA-Z]{8,}\b`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>".
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// newRedactAttr returns a masq ReplaceAttr for slog.HandlerOptions. Fields
// are redacted by name, and values by pattern and by the literal secrets
// passed in, so a configured key is hidden even under an unexpected name.
func newRedactAttr(secrets []string) func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(secrets)+9)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithFieldPrefix("rapidapi"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(rapidAPIKeyPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	for _, s := range secrets {
		if s == "" {
			continue
		}
		opts = append(opts, masq.WithRegex(regexp.MustCompile(regexp.QuoteMeta(s))))
	}

	return masq.New(opts...)
}
