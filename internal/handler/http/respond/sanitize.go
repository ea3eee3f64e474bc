package respond

import (
	"regexp"
)

var (
	// user:password@ inside URI-style DSNs (postgres://, mongodb://, mongodb+srv://)
	uriPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// password=... in key/value DSNs
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)[^\s&]+`)

	// bearer tokens echoed back by proxies or auth errors
	bearerPattern = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9\-_.]+`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = uriPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	msg = bearerPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
