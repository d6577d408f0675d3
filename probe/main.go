package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"gameinput"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kbinani/screenshot"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// Game displays the raw output of an input reader each tick, as a
// diagnostic for wiring new readers.
type Game struct {
	reader  gameinput.Reader
	desktop *gameinput.Desktop // non-nil when polling the OS cursor

	presses int
	lastX   float64
	lastY   float64
}

func (g *Game) Update() error {
	if g.desktop != nil {
		g.desktop.Poll()
	}
	g.lastX, g.lastY = g.reader.PointerPosition()
	if g.reader.InteractPressed() {
		g.presses++
		log.Printf("interact #%d at (%.0f, %.0f)", g.presses, g.lastX, g.lastY)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(g.lastX), float32(g.lastY), 4, color.RGBA{R: 0xff, A: 0xff}, true)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("pointer: (%.0f, %.0f)\npresses: %d", g.lastX, g.lastY, g.presses))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// windowSize fits the probe window to half the primary display, falling
// back to a fixed size on headless hosts.
func windowSize() (int, int) {
	if screenshot.NumActiveDisplays() < 1 {
		return defaultWidth, defaultHeight
	}
	bounds := screenshot.GetDisplayBounds(0)
	return bounds.Dx() / 2, bounds.Dy() / 2
}

func main() {
	useDesktop := flag.Bool("desktop", false, "read the OS-global cursor instead of the window cursor")
	flag.Parse()

	game := &Game{}
	if *useDesktop {
		game.desktop = gameinput.NewDesktop()
		game.reader = game.desktop
	} else {
		game.reader = gameinput.MouseKeyboard{InteractKeys: []ebiten.Key{ebiten.KeySpace}}
	}

	w, h := windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("gameinput probe")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
