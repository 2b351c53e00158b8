//go:build cgo && !tinygo

package window

import "github.com/hajimehoshi/ebiten/v2"

var namedKeys = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"enter":     ebiten.KeyEnter,
	" ":         ebiten.KeySpace,
	"space":     ebiten.KeySpace,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"shift":     ebiten.KeyShift,
	"ctrl":      ebiten.KeyControl,
	"alt":       ebiten.KeyAlt,
	",":         ebiten.KeyComma,
	".":         ebiten.KeyPeriod,
	"/":         ebiten.KeySlash,
	";":         ebiten.KeySemicolon,
}

// ebitenKey translates a terminal key name, as used in key maps, to the
// physical key Ebitengine polls. Modifier combinations are not supported.
func ebitenKey(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) != 1 {
		return 0, false
	}
	switch c := name[0]; {
	case c >= 'a' && c <= 'z':
		return ebiten.KeyA + ebiten.Key(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return ebiten.KeyA + ebiten.Key(c-'A'), true
	case c >= '0' && c <= '9':
		return ebiten.KeyDigit0 + ebiten.Key(c-'0'), true
	}
	return 0, false
}
