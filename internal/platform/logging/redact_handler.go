package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names whose values never reach a log
// line. The HTTP middleware redacts them when dumping headers and masq
// redacts them as attribute keys.
var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"proxy-authorization",
	"set-cookie",
	"x-api-key",
	"x-tracker-signature",
}

// sensitiveFields are attribute keys redacted wherever they appear.
var sensitiveFields = []string{
	"password",
	"secret",
	"signing_secret",
	"token",
}

var (
	// bearerPattern catches "Bearer <token>" embedded in free text.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// signaturePattern catches webhook signatures ("sha256=<hex>").
	signaturePattern = regexp.MustCompile(`sha256=[0-9a-f]{64}`)
	// apiKeyInlinePattern catches "api_key=<value>" and "apikey: <value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// IsSensitiveHeader reports whether the named header carries a credential.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+5)

	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(signaturePattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
