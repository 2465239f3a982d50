package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color for a screen cell.
// The zero value means "terminal default"; concrete colors carry a marker bit
// so that pure black can still be expressed.
type Color uint32

const colorSetBit = 1 << 24

// Predefined colors for game elements.
const (
	ColorDefault       Color = 0
	ColorBlack         Color = colorSetBit | 0x000000
	ColorRed           Color = colorSetBit | 0xcd3131
	ColorGreen         Color = colorSetBit | 0x0dbc79
	ColorYellow        Color = colorSetBit | 0xe5e510
	ColorBlue          Color = colorSetBit | 0x2472c8
	ColorMagenta       Color = colorSetBit | 0xbc3fbc
	ColorCyan          Color = colorSetBit | 0x11a8cd
	ColorWhite         Color = colorSetBit | 0xe5e5e5
	ColorBrightRed     Color = colorSetBit | 0xf14c4c
	ColorBrightGreen   Color = colorSetBit | 0x23d18b
	ColorBrightYellow  Color = colorSetBit | 0xf5f543
	ColorBrightBlue    Color = colorSetBit | 0x3b8eea
	ColorBrightMagenta Color = colorSetBit | 0xd670d6
	ColorBrightCyan    Color = colorSetBit | 0x29b8db
	ColorBrightWhite   Color = colorSetBit | 0xffffff
	ColorOrange        Color = colorSetBit | 0xff8700
	ColorGray          Color = colorSetBit | 0x8a8a8a
)

// Fallbacks used when an effect needs concrete channels for a default color.
var (
	DefaultForeground = RGB(204, 204, 204)
	DefaultBackground = RGB(0, 0, 0)
)

// RGB builds a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(colorSetBit | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// HSL builds a color from hue in degrees, saturation and lightness in [0, 1].
func HSL(h, s, l float64) Color {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB(r, g, b)
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSetBit == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Or returns c, or fallback when c is the terminal default.
func (c Color) Or(fallback Color) Color {
	if c.IsDefault() {
		return fallback
	}
	return c
}

// Hex returns the "#rrggbb" form, or an empty string for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Invert returns the channel-wise negative of c.
func (c Color) Invert() Color {
	r, g, b := c.Channels()
	return RGB(255-r, 255-g, 255-b)
}

// WithChannels replaces individual channels, keeping the others.
// A negative argument leaves that channel untouched.
func (c Color) WithChannels(r, g, b int) Color {
	cr, cg, cb := c.Channels()
	if r >= 0 {
		cr = uint8(Clamp(r, 0, 255))
	}
	if g >= 0 {
		cg = uint8(Clamp(g, 0, 255))
	}
	if b >= 0 {
		cb = uint8(Clamp(b, 0, 255))
	}
	return RGB(cr, cg, cb)
}

// Blend mixes c toward other by t in [0, 1].
func (c Color) Blend(other Color, t float64) Color {
	a := toColorful(c)
	b := toColorful(other)
	r, g, bl := a.BlendRgb(b, ClampF(t, 0, 1)).Clamped().RGB255()
	return RGB(r, g, bl)
}

// Scale darkens (f < 1) or brightens (f > 1) a color.
func (c Color) Scale(f float64) Color {
	r, g, b := c.Channels()
	return RGB(
		uint8(ClampF(float64(r)*f, 0, 255)),
		uint8(ClampF(float64(g)*f, 0, 255)),
		uint8(ClampF(float64(b)*f, 0, 255)),
	)
}

func toColorful(c Color) colorful.Color {
	r, g, b := c.Channels()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
