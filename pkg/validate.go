package pkg

import (
	"bytes"
	"regexp"
)

// placementRe matches eight rank segments. Letters are case-insensitive, digits are 1-8.
var placementRe = regexp.MustCompile(`(?i)^[prnbqk1-8]+(?:/[prnbqk1-8]+){7}$`)

// head returns the part of a record that carries the placement. Anything after the
// first space, tab or line break is trailing content.
func head(b []byte) []byte {
	if i := bytes.IndexAny(b, " \t\r\n"); i >= 0 {
		return b[:i]
	}
	return b
}

// Validate reports whether b looks like a piece-placement string. It checks the
// alphabet and the number of ranks; file counts are left to Parse.
func Validate(b []byte) bool {
	return placementRe.Match(head(b))
}
