package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize applies the user-generated-content markup policy, stripping
// anything that could execute when the result is rendered as HTML.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
