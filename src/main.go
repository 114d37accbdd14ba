package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"liftsim/src/anim"
	"liftsim/src/config"
	"liftsim/src/display"
	"liftsim/src/elev"
	"liftsim/src/executor"
	"liftsim/src/utils"
)

type request struct {
	origin, destination int
}

func main() {
	cfg := config.Default()
	floors := flag.Int("floors", config.NumFloors, "Number of floors")
	home := flag.Int("home", -1, "Home floor label the cabin returns to when idle (default: ground floor)")
	flag.Float64Var(&cfg.CabinSpeed, "speed", config.CabinSpeed, "Cabin speed in units per tick")
	tick := flag.Duration("tick", config.TickInterval, "Tick interval")
	instant := flag.Bool("instant", false, "Board passengers instantly instead of walking them in")
	logPath := flag.String("log", "liftsim.log", "Log file, empty for stderr")
	debug := flag.Bool("debug", false, "Enable debug logging")
	renderEvery := flag.Int("render-every", 3, "Redraw the shaft every n ticks, 0 for a status line only")
	flag.Parse()

	if err := elev.InitLogger(*logPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg.NumFloors = *floors
	cfg.HomeFloor = cfg.NumFloors - 1
	if *home >= 0 {
		cfg.HomeFloor = display.IndexOf(*home, cfg.NumFloors)
	}

	var transit executor.Transit = anim.NewWalker(cfg, config.BoardingSpeed)
	if *instant {
		transit = &anim.Instant{}
	}
	sim, err := elev.New(cfg, transit)
	if err != nil {
		slog.Error("Cannot start simulation", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	simMgr := elev.StartSimMgr(sim)
	defer simMgr.Stop()

	requestCh := make(chan request)
	go readRequests(cfg.NumFloors, requestCh)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	fmt.Printf("Type requests as \"<from> <to>\" using floor labels 0..%d, Ctrl-C to quit.\n", cfg.NumFloors-1)
	ticks := 0
	for {
		select {
		case req := <-requestCh:
			if _, ok := simMgr.Submit(req.origin, req.destination); !ok {
				fmt.Println("Request ignored: origin and destination are the same floor")
			}
		case now := <-ticker.C:
			simMgr.Tick(now)
			ticks++
			if *renderEvery > 0 && ticks%*renderEvery == 0 {
				fmt.Print("\033[H\033[2J")
				display.Render(os.Stdout, cfg, simMgr.GetState())
			} else if *renderEvery == 0 {
				utils.PrintStatus(os.Stdout, simMgr.GetState(), cfg.FloorHeight)
			}
		case <-interrupt:
			slog.Info("Interrupted, shutting down")
			fmt.Println()
			return
		}
	}
}

// readRequests forwards valid lines from stdin. Invalid lines are reported and skipped.
func readRequests(numFloors int, requestCh chan<- request) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		origin, destination, err := display.ParseRequest(scanner.Text(), numFloors)
		if err != nil {
			slog.Warn("Bad request line", "line", scanner.Text(), "error", err)
			continue
		}
		requestCh <- request{origin, destination}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("Reading stdin", "error", err)
	}
}
