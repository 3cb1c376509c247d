// Package accessibility implements WCAG compliance checks for theme
// color palettes: contrast ratios, color distinguishability, and font
// accessibility.
package accessibility

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/width"
)

// ErrInvalidColor indicates a color value that cannot be parsed.
var ErrInvalidColor = errors.New("accessibility: invalid color value")

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*[\d.]+\s*\)$`)
)

// namedColors covers the CSS color keywords theme authors actually use.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"silver":  "#c0c0c0",
	"navy":    "#000080",
	"teal":    "#008080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"lime":    "#00ff00",
}

// Normalize folds full-width characters to their ASCII equivalents and
// trims whitespace. Theme files authored with a Japanese IME routinely
// contain full-width '＃' and digits in color values.
func Normalize(value string) string {
	return strings.TrimSpace(width.Narrow.String(value))
}

// IsValidColor reports whether value parses as a supported color form:
// #RGB, #RRGGBB, #RRGGBBAA, rgb(r,g,b), rgba(r,g,b,a), or a CSS keyword.
func IsValidColor(value string) bool {
	_, err := ParseColor(value)
	return err == nil
}

// ParseColor parses a color value into a colorful.Color.
// Input is normalized first, so full-width variants are accepted.
func ParseColor(value string) (colorful.Color, error) {
	v := Normalize(value)

	if hex, ok := namedColors[strings.ToLower(v)]; ok {
		v = hex
	}

	switch {
	case hexPattern.MatchString(v):
		// colorful handles #RGB and #RRGGBB; strip the alpha byte first.
		if len(v) == 9 {
			v = v[:7]
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
		return c, nil

	case rgbPattern.MatchString(v):
		return parseRGBTriplet(rgbPattern.FindStringSubmatch(v), value)

	case rgbaPattern.MatchString(v):
		return parseRGBTriplet(rgbaPattern.FindStringSubmatch(v), value)
	}

	return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
}

func parseRGBTriplet(match []string, original string) (colorful.Color, error) {
	var channels [3]float64
	for i := range 3 {
		n, err := strconv.Atoi(match[i+1])
		if err != nil || n > 255 {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, original)
		}
		channels[i] = float64(n) / 255.0
	}
	return colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// relativeLuminance computes WCAG relative luminance from linearized
// sRGB channels.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio computes the WCAG contrast ratio between two color
// values. The result is in [1, 21].
func ContrastRatio(foreground, background string) (float64, error) {
	fg, err := ParseColor(foreground)
	if err != nil {
		return 0, err
	}
	bg, err := ParseColor(background)
	if err != nil {
		return 0, err
	}

	lighter := relativeLuminance(fg)
	darker := relativeLuminance(bg)
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05), nil
}
