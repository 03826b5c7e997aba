package colors

// Color is an RGBA color with float32 channels. Channels are not clamped;
// additive adjustments may leave them outside [0,1] and the display result
// is then up to the driver.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkTeal = Color{0.1, 0.2, 0.2, 1}
)

// Add returns c with per-channel deltas applied, unclamped.
func (c Color) Add(dr, dg, db, da float32) Color {
	c[0] += dr
	c[1] += dg
	c[2] += db
	c[3] += da
	return c
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}
