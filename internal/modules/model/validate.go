package model

import "regexp"

var (
	urlRe   = regexp.MustCompile(`^https?://.+\..+`)
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

// ValidURL accepts scheme://host.tld/... shaped strings.
func ValidURL(s string) bool {
	return urlRe.MatchString(s)
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
