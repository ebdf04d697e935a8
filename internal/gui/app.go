package gui

import (
	"fmt"
	"log"
	"time"

	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/render"
	"github.com/san-kum/gravbox/internal/sim"
)

// Run opens the window, starts the simulation worker and blocks in the render
// loop until the window is closed. Observers receive every worker frame.
func Run(cfg *config.Config, observers ...sim.Observer) error {
	win, err := Open(cfg)
	if err != nil {
		return err
	}
	defer win.Close()
	log.Printf("gui: %dx%d window open", config.Width, config.Height)

	worker := sim.NewWorker(sim.DefaultCenter)
	for _, o := range observers {
		worker.AddObserver(o)
	}
	pipeline := sim.Start(worker)

	opts := render.Options{
		Width:      config.Width,
		Height:     config.Height,
		Background: cfg.Background(),
		Palette:    cfg.Palette(),
		FrameDelay: time.Second / time.Duration(cfg.FrameRate),
	}
	loop := render.NewLoop(win, win, pipeline, opts)

	if err := loop.Run(); err != nil {
		return fmt.Errorf("render loop: %w", err)
	}

	<-pipeline.Done
	log.Printf("gui: closed after %d frames", loop.Frames())
	return nil
}
