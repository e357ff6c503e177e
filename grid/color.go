package grid

import (
	"strconv"

	"github.com/coreterm/vte"
)

// ansi16 are the xterm default-theme RGB values for palette indices 0-15.
var ansi16 = [16]vte.Rgb{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// defaultPaletteEntry computes the xterm 256-color default for index:
// 0-15 the named ANSI colors, 16-231 a 6x6x6 RGB cube, 232-255 a grayscale
// ramp.
func defaultPaletteEntry(index int) vte.Rgb {
	switch {
	case index < 16:
		return ansi16[index]
	case index < 232:
		i := index - 16
		r := cubeLevel(i / 36)
		g := cubeLevel((i / 6) % 6)
		b := cubeLevel(i % 6)
		return vte.Rgb{R: r, G: g, B: b}
	default:
		level := uint8(8 + (index-232)*10)
		return vte.Rgb{R: level, G: level, B: level}
	}
}

// cubeLevels are the six per-channel intensities xterm's 6x6x6 color cube
// uses for indices 16-231.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func cubeLevel(n int) uint8 { return cubeLevels[n] }

// SetColor sets a palette or named-slot color. index follows spec.md §4.3's
// OSC 4/10/11/12 numbering: 0-255 index the 256-color palette; 256/257/258
// are the Foreground/Background/Cursor named slots (vte.NamedColor's
// special-slot numbering).
func (g *Grid) SetColor(index int, rgb vte.Rgb) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case index >= 0 && index < 256:
		g.palette[index] = rgb
	case index == int(vte.Foreground):
		g.attrs.Foreground = vte.SpecColor(rgb)
	case index == int(vte.Background):
		g.attrs.Background = vte.SpecColor(rgb)
	}
}

func (g *Grid) ResetColor(index int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case index >= 0 && index < 256:
		g.palette[index] = defaultPaletteEntry(index)
	case index == int(vte.Foreground):
		g.attrs.Foreground = vte.NamedColorOf(vte.Foreground)
	case index == int(vte.Background):
		g.attrs.Background = vte.NamedColorOf(vte.Background)
	case index == int(vte.Cursor):
		// Grid has no dedicated cursor-color field to reset; the renderer
		// is expected to fall back to its own default when none was set.
	}
}

// Resolve turns a Color into a concrete Rgb using this Grid's palette for
// indexed colors, for a renderer that needs actual pixels.
func (g *Grid) Resolve(c vte.Color) vte.Rgb {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch c.Kind {
	case vte.ColorSpec:
		return c.Spec
	case vte.ColorIndexed:
		return g.palette[c.Indexed]
	case vte.ColorNamed:
		if int(c.Named) < 16 {
			return ansi16[c.Named]
		}
		return g.palette[0]
	default:
		return vte.Rgb{}
	}
}

// DynamicColorSequence replies to an OSC "?" query (e.g. "10;?") with the
// color's current value in rgb:RRRR/GGGG/BBBB form, scaled to 16 bits per
// channel the way xterm replies.
func (g *Grid) DynamicColorSequence(prefix string, index int, terminator byte) {
	if g.Out == nil {
		return
	}
	var rgb vte.Rgb
	switch {
	case index >= 0 && index < 256:
		g.mu.Lock()
		rgb = g.palette[index]
		g.mu.Unlock()
	case index == int(vte.Foreground):
		rgb = g.Resolve(g.currentForeground())
	case index == int(vte.Background):
		rgb = g.Resolve(g.currentBackground())
	}

	term := "\x1b\\"
	if terminator == 0x07 {
		term = string(terminator)
	}
	reply := "\x1b]" + prefix + ";rgb:" +
		hex16(rgb.R) + "/" + hex16(rgb.G) + "/" + hex16(rgb.B) + term
	g.Out.Write([]byte(reply))
}

func (g *Grid) currentForeground() vte.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attrs.Foreground
}

func (g *Grid) currentBackground() vte.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attrs.Background
}

func hex16(c uint8) string {
	v := uint16(c) * 0x101 // scale 8-bit channel to 16-bit, xterm's own convention
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
