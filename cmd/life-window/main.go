//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// window adapts a grid to the ebiten.Game interface.
//
// Keys: Q/Esc quit, Space pause, N single step, R reseed, G stamp a glider at
// the cursor. Clicking toggles the cell under the cursor.
type window struct {
	config  utils.Config
	grid    *model.Grid
	painter *render.GridPainter
	scale   int
	seed    uint64

	paused   bool
	tickOnce bool
}

func newWindow(config utils.Config, scale int) (*window, error) {
	grid, err := model.Random(config.Seed, config.Probability, config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	return &window{
		config:  config,
		grid:    grid,
		painter: render.NewGridPainter(int(config.Width), int(config.Height)),
		scale:   scale,
		seed:    config.Seed,
	}, nil
}

func (w *window) cursorCell() (row, column uint32, ok bool) {
	x, y := ebiten.CursorPosition()
	return render.CellAt(x, y, w.scale)
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.seed++
		grid, err := model.Random(w.seed, w.config.Probability, w.config.Width, w.config.Height)
		if err != nil {
			return err
		}
		w.grid = grid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if row, column, ok := w.cursorCell(); ok {
			w.grid.Put(row, column, patterns.Glider())
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, column, ok := w.cursorCell(); ok {
			w.grid.Toggle(row, column)
		}
	}

	if !w.paused || w.tickOnce {
		if w.config.UseParallel {
			if err := w.grid.StepParallel(w.config.Workers); err != nil {
				return err
			}
		} else {
			w.grid.Step()
		}
		w.tickOnce = false
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	w.painter.Blit(screen, w.grid, color.White, color.Black, w.scale)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.grid.Width()) * w.scale, int(w.grid.Height()) * w.scale
}

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to a JSON or YAML config file")
		scale      = flag.Int("scale", 6, "pixels per cell")
		tps        = flag.Int("tps", 15, "generations per second")
	)
	flag.Parse()

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
		config.Width, config.Height = 160, 100
		config.Probability = 0.3
	}

	w, err := newWindow(config, *scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("go-life")
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(int(config.Width)*(*scale), int(config.Height)*(*scale))

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
