package starfield

import "image/color"

// Canvas is the drawing surface a field renders onto. Coordinates are logical
// pixels; SetScale installs the logical-to-backing transform for the frame.
type Canvas interface {
	SetScale(scale float64)
	Fill(clr color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)
	FillCircle(x, y, r float64, clr color.NRGBA)
	// Vignette darkens the edges; strength is the edge opacity in [0,1].
	Vignette(strength float64)
}
