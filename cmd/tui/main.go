// Command tui is a terminal boundary consumer: a renderer over read-only
// snapshots of the collision engine. It owns its own engine instance and
// never mutates simulation state — it only reads the Snapshot handed to
// it between ticks.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/0x5844/physics2d/internal/boundary"
	"github.com/0x5844/physics2d/internal/collision"
	"github.com/0x5844/physics2d/internal/config"
	"github.com/0x5844/physics2d/internal/sink"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("tui: invalid configuration: %v", err)
	}

	metricsSink := sink.NewLogSink(false)
	driver, err := boundary.New(cfg, metricsSink)
	if err != nil {
		log.Fatalf("tui: building engine: %v", err)
	}
	defer driver.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("tui: creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("tui: initializing screen: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	width, height := screen.Size()
	snapshots := make(chan boundary.Snapshot, 1)
	go tickLoop(driver, snapshots)

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				switch {
				case e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q':
					return
				case e.Rune() == ' ' && cfg.PauseAfterTick:
					driver.Resume() <- struct{}{}
				}
			case *tcell.EventResize:
				width, height = e.Size()
				screen.Sync()
			}
		case snap := <-snapshots:
			render(screen, snap, width, height)
		}
	}
}

// tickLoop runs the engine on its own goroutine at a fixed cadence so a
// paused tick (blocked in Driver.Tick awaiting Resume) never stalls event
// handling or rendering.
func tickLoop(driver *collision.Driver, snapshots chan<- boundary.Snapshot) {
	var last collision.TickMetrics
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		last.TotalCollisions = driver.Tick()
		last.TickIndex++
		snap := boundary.TakeSnapshot(driver, last)
		select {
		case snapshots <- snap:
		default:
		}
	}
}

func render(screen tcell.Screen, snap boundary.Snapshot, width, height int) {
	screen.Clear()

	scale := func(x, y float64) (int, int) {
		cx := width/2 + int(x)
		cy := height/2 - int(y/2)
		return cx, cy
	}

	stationaryStyle := tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	movingStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange)

	for _, s := range snap.Stationary {
		cx, cy := scale(s.Position.X, s.Position.Y)
		if cx >= 0 && cx < width && cy >= 0 && cy < height {
			screen.SetContent(cx, cy, 'o', nil, stationaryStyle)
		}
	}
	for _, m := range snap.Moving {
		cx, cy := scale(m.Position.X, m.Position.Y)
		if cx >= 0 && cx < width && cy >= 0 && cy < height {
			screen.SetContent(cx, cy, '*', nil, movingStyle)
		}
	}

	status := fmt.Sprintf("tick %d  collisions %d  (q to quit)", snap.Tick.TickIndex, snap.Tick.TotalCollisions)
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, tcell.StyleDefault)
	}

	screen.Show()
}
