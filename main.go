package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	log.SetPrefix("[go-life] ")
	log.SetFlags(0)

	var (
		configPath  = flag.String("config", "config.json", "path to a JSON or YAML config file")
		seed        = flag.Uint64("seed", 0, "random seed")
		width       = flag.Uint("width", 0, "grid width in cells")
		height      = flag.Uint("height", 0, "grid height in cells")
		probability = flag.Float64("prob", 0, "probability a cell starts alive")
		generations = flag.Uint64("generations", 0, "stop after this many generations (0 = run until interrupted)")
		parallel    = flag.Bool("parallel", false, "step rows in parallel")
		dumpConfig  = flag.Bool("dump-config", false, "print the effective config as YAML and exit")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Seed = *seed
		case "width":
			config.Width = uint32(*width)
		case "height":
			config.Height = uint32(*height)
		case "prob":
			config.Probability = *probability
		case "generations":
			config.MaxGenerations = *generations
		case "parallel":
			config.UseParallel = *parallel
		}
	})
	if err = config.Validate(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	if *dumpConfig {
		data, err := config.YAML()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
		return
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	displayGameInfo(os.Stdout, config, g.grid)
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
				g.stats.TotalGenerations, g.stats.Runtime().Seconds(), g.stats.AveragePopulation)
			return
		default:
		}

		frameStart := time.Now()
		if err = g.renderer.Clear(); err != nil {
			log.Printf("clearing terminal: %v", err)
		}

		population, density, status, isStagnant := updateGameState(g, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(os.Stdout, g, population, density, status)
		if err = g.renderer.Display(g.grid); err != nil {
			log.Fatalf("rendering: %v", err)
		}

		if config.MaxGenerations > 0 && g.stats.TotalGenerations >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		if shouldRestart, reason := checkRestartConditions(population, stagnantCount, config); shouldRestart && config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", reason)
			if err = restartGame(g); err != nil {
				log.Fatal(err)
			}
			stagnantCount = 0
			time.Sleep(time.Second)
			continue
		}

		if err = advance(g); err != nil {
			log.Fatal(err)
		}

		time.Sleep(config.FrameRate)
	}
}
