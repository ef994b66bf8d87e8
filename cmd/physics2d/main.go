// Command physics2d is the process entry point: it resolves
// configuration, builds the engine, runs it to completion or until
// interrupted, and reports final statistics.
package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/0x5844/physics2d/internal/boundary"
	"github.com/0x5844/physics2d/internal/config"
	"github.com/0x5844/physics2d/internal/sink"
)

var (
	// Version can be overridden at build time via -ldflags "-X main.Version=...".
	Version = "dev"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("physics2d: invalid configuration: %v", err)
	}

	if profile := os.Getenv("PHYSICS2D_CPU_PROFILE"); profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			log.Fatalf("physics2d: creating cpu profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("physics2d: starting cpu profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	metricsSink, closer, err := sink.New(cfg.Sink, cfg.SinkPath, cfg.EmitPerCollision)
	if err != nil {
		log.Fatalf("physics2d: building sink: %v", err)
	}
	defer closer.Close()

	driver, err := boundary.New(cfg, metricsSink)
	if err != nil {
		log.Fatalf("physics2d: building engine: %v", err)
	}
	defer driver.Close()

	log.Printf("physics2d %s: %d circles, %d workers, sink=%s", Version, cfg.TotalCircles, cfg.MaxWorkers, cfg.Sink)

	if cfg.PauseAfterTick {
		log.Println("physics2d: pause-after-tick enabled, press enter to advance each tick")
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				driver.Resume() <- struct{}{}
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("physics2d: shutting down gracefully...")
		cancel()
	}()

	start := time.Now()
	var ticksRun int

	for cfg.Ticks == 0 || ticksRun < cfg.Ticks {
		select {
		case <-ctx.Done():
			goto done
		default:
		}
		driver.Tick()
		ticksRun++
	}

done:
	log.Printf("physics2d: %d ticks in %s", ticksRun, time.Since(start))
}
