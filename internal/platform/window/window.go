//go:build cgo && !tinygo

// Package window hosts games in a desktop window using Ebitengine.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/logging"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/platform/host"
	"github.com/vovakirdan/fbcore/internal/platform/snapshot"
	"github.com/vovakirdan/fbcore/internal/registry"
)

// Run opens a window and plays game until the window closes, Escape is
// pressed or ctx ends. Ebitengine's update rate paces the frame loop.
func Run(ctx context.Context, game registry.Game, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = opts.withDefaults()

	fb := host.NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	keys := &host.Keys{}
	vblank := make(chan struct{})
	pacer := host.NewSignalPacer(fb, vblank)

	var lopts []loop.Option
	if opts.Seed != 0 {
		lopts = append(lopts, loop.WithSeed(opts.Seed))
	}
	if opts.Logger != nil {
		lopts = append(lopts, logging.Observers(opts.Logger, 0)...)
	}
	runner := loop.New(fb, keys, pacer, lopts...)

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- runner.Run(ctx, game)
	}()

	w := &windowGame{
		ctx:      ctx,
		gameID:   game.ID(),
		fb:       fb,
		keys:     keys,
		vblank:   vblank,
		bindings: ebitenBindings(opts.KeyMap, opts.Logger),
		shotDir:  opts.ShotDir,
		logger:   opts.Logger,
	}

	ebiten.SetWindowTitle(game.Title())
	scale := opts.Scale
	if mw, mh := ebiten.Monitor().Size(); mw > 0 && mh > 0 {
		scale = host.Scale(core.ScreenWidth, core.ScreenHeight, mw, mh, opts.Scale)
	}
	ebiten.SetWindowSize(core.ScreenWidth*scale, core.ScreenHeight*scale)
	ebiten.SetTPS(opts.TickRate)
	err := ebiten.RunGame(w)

	cancel()
	pacer.Close()
	if lerr := <-loopErr; lerr != nil && !errors.Is(lerr, context.Canceled) {
		return fmt.Errorf("window: frame loop: %w", lerr)
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type keyBinding struct {
	key    ebiten.Key
	button core.Buttons
}

type windowGame struct {
	ctx      context.Context
	gameID   string
	fb       *host.Framebuffer
	keys     *host.Keys
	vblank   chan struct{}
	bindings []keyBinding
	shotDir  string
	logger   *log.Logger

	pixels []core.Color
	rgba   []byte
	img    *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var mask core.Buttons
	for _, b := range g.bindings {
		if ebiten.IsKeyPressed(b.key) {
			mask |= b.button
		}
	}
	g.keys.SetMask(mask)

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshot()
	}

	// Release one frame of the loop, if it is waiting.
	select {
	case g.vblank <- struct{}{}:
	default:
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.pixels, _ = g.fb.Snapshot(g.pixels)
	if g.img == nil {
		g.img = ebiten.NewImage(g.fb.Width(), g.fb.Height())
		g.rgba = make([]byte, 4*len(g.pixels))
	}
	for i, px := range g.pixels {
		c := px.ToRGBA()
		j := i * 4
		g.rgba[j+0] = c.R
		g.rgba[j+1] = c.G
		g.rgba[j+2] = c.B
		g.rgba[j+3] = 0xFF
	}
	g.img.WritePixels(g.rgba)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}

func (g *windowGame) screenshot() {
	pixels, _ := g.fb.Snapshot(nil)
	path, err := snapshot.SaveFrame(g.shotDir, g.gameID, pixels, g.fb.Width(), g.fb.Height())
	if g.logger == nil {
		return
	}
	if err != nil {
		g.logger.Error("screenshot", "err", err)
		return
	}
	g.logger.Info("screenshot", "path", path)
}

// ebitenBindings resolves the key map's names to Ebitengine keys. Names
// without an Ebitengine equivalent are skipped.
func ebitenBindings(km host.KeyMap, logger *log.Logger) []keyBinding {
	var out []keyBinding
	for _, b := range km.Buttons {
		for _, name := range b.Keys() {
			k, ok := ebitenKey(name)
			if !ok {
				if logger != nil {
					logger.Debug("key has no window equivalent", "key", name, "button", b.Button)
				}
				continue
			}
			out = append(out, keyBinding{key: k, button: b.Button})
		}
	}
	return out
}
