package widget

import "regexp"

// emailPattern is the HTML living standard pattern for type=email inputs.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// IsEmail reports whether value has the shape local@domain, where domain is
// one or more dot-separated labels of letters, digits and hyphens, each 1-63
// characters long and neither starting nor ending with a hyphen.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}
