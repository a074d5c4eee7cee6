package render

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// rgba converts a hex color into a CSS rgba() value. Malformed input
// degrades to opaque black rather than failing the whole stylesheet.
func rgba(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Sprintf("rgba(0, 0, 0, %s)", formatAlpha(alpha))
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(alpha))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
