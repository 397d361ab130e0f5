package cloud

import "fmt"

// ColorKey tags every sampled point with its orbital's display color.
// The renderer treats it as an opaque key; the format happens to be a
// CSS hsl() string so debug views can use it directly.
type ColorKey string

// Base hue per angular momentum: s blue, p red, d green, f violet.
var lobeHues = [...]int{210, 0, 130, 280}

const (
	// hueStepPerLobe separates the m orientations of one subshell.
	hueStepPerLobe = 14
	// lightnessBase and lightnessPerShell brighten outer shells so
	// diffuse clouds stay visible over tight cores.
	lightnessBase     = 38
	lightnessPerShell = 5
	maxLightness      = 72
	colorSaturation   = 70
	fallbackHue       = 40 // l beyond f, should not occur in practice
)

// colorFor derives the display color for an orbital from (n, l, m):
// hue from l and the m display index, lightness from n.
func colorFor(n, l, m int) ColorKey {
	hue := fallbackHue
	if l >= 0 && l < len(lobeHues) {
		hue = lobeHues[l]
	}
	hue = (hue + magneticIndex(m)*hueStepPerLobe) % 360

	lightness := lightnessBase + n*lightnessPerShell
	if lightness > maxLightness {
		lightness = maxLightness
	}

	return ColorKey(fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, colorSaturation, lightness))
}

// magneticIndex maps a magnetic number to its display-order position:
// 0→0, +1→1, -1→2, +2→3, -2→4, …
func magneticIndex(m int) int {
	switch {
	case m == 0:
		return 0
	case m > 0:
		return 2*m - 1
	default:
		return -2 * m
	}
}
