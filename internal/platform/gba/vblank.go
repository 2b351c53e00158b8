package gba

// First scanline of the vertical blank.
const vblankLine = 160

// waitVBlank blocks until the scanline counter enters the blanking range,
// then until it leaves it again.
func waitVBlank(vcount func() uint16) {
	for vcount() < vblankLine {
	}
	for vcount() >= vblankLine {
	}
}
