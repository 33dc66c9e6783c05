package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack    = RGB{0, 0, 0}
	RGBWhite    = RGB{255, 255, 255}
	RGBGreen    = RGB{0, 255, 0}
	RGBRed      = RGB{255, 0, 0}
	RGBCyan     = RGB{0, 255, 255}
	RGBPink     = RGB{255, 100, 200}
	RGBDarkMoss = RGB{0, 50, 0}
	RGBDimBlue  = RGB{0, 0, 100}
)

// Heat shifts the color toward red and away from green by step, clamped to [0,255]
// Blue is cleared, matching the ball's green-to-red speed indicator
func (c RGB) Heat(step int) RGB {
	return RGB{
		R: uint8(min(int(c.R)+step, 255)),
		G: uint8(max(int(c.G)-step, 0)),
		B: 0,
	}
}
