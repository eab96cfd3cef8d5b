package cfg

import (
	"net/url"
	"strings"
)

// maskDBString hides the password of a URL dbstring. Raw driver DSNs are replaced entirely since
// the position of their password depends on the driver.
func maskDBString(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		return masked
	}
	u, err := url.Parse(s)
	if err != nil {
		return masked
	}
	return u.Redacted()
}
