package util

import (
	"fmt"
	"strings"
)

// Upper returns s upper-cased.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Describe returns s quoted.
func Describe(s string) string {
	return fmt.Sprintf("%q", s)
}
