// Command gui is the graphical boundary consumer: an ebiten renderer over
// read-only snapshots of the collision engine, structured around the
// usual Game/Update/Draw/Layout loop. It owns its own engine instance,
// runs it on its own goroutine, and only ever reads a Snapshot that the
// tick goroutine stores under a mutex between ticks.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/0x5844/physics2d/internal/boundary"
	"github.com/0x5844/physics2d/internal/collision"
	"github.com/0x5844/physics2d/internal/config"
	"github.com/0x5844/physics2d/internal/sink"
)

const (
	windowWidth  = 960
	windowHeight = 720
)

// game holds a mutex-guarded snapshot fed by tickLoop, running on its own
// goroutine — ebiten's Update must never block, but Driver.Tick can, when
// PauseAfterTick is set, until Resume() is sent.
type game struct {
	driver         *collision.Driver
	pauseAfterTick bool

	mu       sync.Mutex
	snapshot boundary.Snapshot

	spaceWasDown bool
}

func tickLoop(driver *collision.Driver, mu *sync.Mutex, snapshot *boundary.Snapshot) {
	var last collision.TickMetrics
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		last.TotalCollisions = driver.Tick()
		last.TickIndex++
		snap := boundary.TakeSnapshot(driver, last)
		mu.Lock()
		*snapshot = snap
		mu.Unlock()
	}
}

func (g *game) Update() error {
	if g.pauseAfterTick {
		down := ebiten.IsKeyPressed(ebiten.KeySpace)
		if down && !g.spaceWasDown {
			select {
			case g.driver.Resume() <- struct{}{}:
			default:
			}
		}
		g.spaceWasDown = down
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 20, A: 255})

	g.mu.Lock()
	snapshot := g.snapshot
	g.mu.Unlock()

	originX, originY := float32(windowWidth/2), float32(windowHeight/2)

	for _, s := range snapshot.Stationary {
		cx := originX + float32(s.Position.X)
		cy := originY - float32(s.Position.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(s.Radius), color.RGBA{R: 70, G: 120, B: 220, A: 255}, true)
	}
	for _, m := range snapshot.Moving {
		cx := originX + float32(m.Position.X)
		cy := originY - float32(m.Position.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(m.Radius), color.RGBA{R: 230, G: 140, B: 40, A: 255}, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d  collisions %d  FPS %.0f",
		snapshot.Tick.TickIndex, snapshot.Tick.TotalCollisions, ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("gui: invalid configuration: %v", err)
	}

	metricsSink := sink.NewLogSink(false)
	driver, err := boundary.New(cfg, metricsSink)
	if err != nil {
		log.Fatalf("gui: building engine: %v", err)
	}
	defer driver.Close()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("physics2d")

	g := &game{driver: driver, pauseAfterTick: cfg.PauseAfterTick}
	go tickLoop(driver, &g.mu, &g.snapshot)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("gui: %v", err)
	}
}
