package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles the state the main loop carries between frames
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	seed     uint64

	generations uint64 // across restarts, unlike grid.Generation
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := seedGrid(config, config.Seed, pool)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	return &game{
		config:   config,
		grid:     grid,
		pool:     pool,
		history:  model.NewHistory(0),
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		seed:     config.Seed,
	}, nil
}

// seedGrid builds a board from random noise plus the configured pattern placements
func seedGrid(config utils.Config, seed uint64, pool *model.GridPool) (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if pool != nil {
		grid, err = pool.Get(config.Width, config.Height)
	} else {
		grid, err = model.Empty(config.Width, config.Height)
	}
	if err != nil {
		return nil, errors.Wrap(err, "[seedGrid]")
	}

	if config.Probability > 0 {
		noise, err := model.Random(seed, config.Probability, config.Width, config.Height)
		if err != nil {
			model.GridToPool(grid, pool)
			return nil, errors.Wrap(err, "[seedGrid]")
		}
		grid.Put(0, 0, noise.Pattern("noise"))
	}

	if err = applyPlacements(grid, config.Patterns); err != nil {
		model.GridToPool(grid, pool)
		return nil, errors.Wrap(err, "[seedGrid]")
	}
	return grid, nil
}

// applyPlacements stamps each configured pattern onto the grid
func applyPlacements(grid *model.Grid, placements []utils.Placement) error {
	for _, placement := range placements {
		pattern, ok := patterns.Lookup(placement.Pattern)
		if !ok {
			return errors.Errorf("[applyPlacements] unknown pattern %q, available: %v", placement.Pattern, patterns.Names())
		}
		grid.Put(placement.Row, placement.Column, pattern)
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(out, "Features: Memory Pool: %v, Parallel: %v (workers: %d)\n",
		config.UseMemoryPool, config.UseParallel, config.Workers)
	fmt.Fprintf(out, "Grid: %dx%d | Seed: %d | Initial living cells: %d\n",
		grid.Width(), grid.Height(), config.Seed, grid.Population())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState checks the current generation against history, then records it
func updateGameState(g *game, lastFrameTime time.Time) (population uint64, density float64, status string, isStagnant bool) {
	population = g.grid.Population()
	density = float64(population) / float64(g.grid.Size()) * 100

	g.stats.Update(g.generations, population, time.Since(lastFrameTime))

	isStagnant = g.history.IsStagnant(g.grid)
	g.history.Record(g.grid)

	status = "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.grid.Generation())
	}
	if population == 0 {
		status = "Extinct"
	}

	return population, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, g *game, population uint64, density float64, status string) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.grid.Generation(), population, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population uint64, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame recycles the old board and seeds a new one from the next seed
func restartGame(g *game) error {
	g.seed++
	grid, err := seedGrid(g.config, g.seed, g.pool)
	if err != nil {
		return errors.Wrap(err, "[restartGame]")
	}

	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.history.Reset()
	g.stats.Restarts++
	return nil
}

// advance steps the board once, in parallel when configured
func advance(g *game) error {
	if !g.config.UseParallel {
		g.grid.Step()
	} else if err := g.grid.StepParallel(g.config.Workers); err != nil {
		return errors.Wrap(err, "[advance]")
	}
	g.generations++
	return nil
}
