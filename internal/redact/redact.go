// Package redact scrubs credentials and other sensitive fragments from
// error strings before they reach the logs. Model provider errors in
// particular can echo back request URLs containing API keys.
package redact

import "regexp"

const (
	redactedKey        = "[REDACTED_KEY]"
	redactedCredential = "[REDACTED_CREDENTIAL]"
	redactedJWT        = "[REDACTED_JWT]"
	redactedPath       = "[REDACTED_PATH]"
)

var (
	// key=... query parameters and api_key/token/secret assignments.
	apiKeyRe = regexp.MustCompile(
		`(?i)(api[_-]?key|key|token|secret|authorization)(['"\s:=]+|=)[A-Za-z0-9_\-.~+/]{8,}`)

	// Connection strings with embedded credentials.
	connStringRe = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Standard three-part JWTs.
	jwtRe = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Absolute filesystem paths.
	pathRe = regexp.MustCompile(`(/[\w.-]+){2,}`)
)

// String scrubs sensitive fragments from s.
func String(s string) string {
	s = jwtRe.ReplaceAllString(s, redactedJWT)
	s = connStringRe.ReplaceAllString(s, "$1://"+redactedCredential+"@")
	s = apiKeyRe.ReplaceAllString(s, "$1$2"+redactedKey)
	s = pathRe.ReplaceAllString(s, redactedPath)
	return s
}

// Error scrubs err's message; nil-safe.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
