// Package page holds the fixed HTML bodies served by webpage.
package page

import (
	"errors"
	"fmt"
)

// Variant names one of the fixed pages
type Variant string

const (
	// VariantPlain is a bare heading
	VariantPlain Variant = "plain"
	// VariantStyled is the heading with an inline stylesheet
	VariantStyled Variant = "styled"
)

// Plain is the body served by the plain variant
const Plain = "<h1>Python webpage!</h1>\n"

// Styled is the body served by the styled variant
const Styled = `
<style>
body {
  background-color: lightblue;
  font-family: "Comic Sans MS", cursive;
}
</style>
<h1>Python webpage!</h1>
`

// ErrUnknownVariant is returned when a variant has no page
var ErrUnknownVariant = errors.New("unknown page variant")

var bodies = map[Variant]string{
	VariantPlain:  Plain,
	VariantStyled: Styled,
}

// Variants returns the known variants in display order
func Variants() []Variant {
	return []Variant{VariantPlain, VariantStyled}
}

// Body returns a copy of the HTML body for v
func Body(v Variant) ([]byte, error) {
	body, ok := bodies[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	return []byte(body), nil
}
