// Command mazecarve animates a recursive-backtracker maze in the terminal.
//
// Space restarts carving, Escape (or q) quits. Settings come from MAZE_*
// environment variables or a .env file; see package config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/mazecarve/carver"
	"github.com/katalvlaran/mazecarve/config"
	"github.com/katalvlaran/mazecarve/lattice"
	"github.com/katalvlaran/mazecarve/render"
)

var log = logrus.New()

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	configureLogger(cfg)

	g, err := lattice.NewGrid(cfg.Width, cfg.Height, cfg.CellUnit)
	if err != nil {
		log.WithError(err).Fatal("build lattice")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	canvas := render.NewCanvas(g)
	c, err := carver.New(g, carver.WithSeed(seed), carver.WithOnEvent(canvas.Apply))
	if err != nil {
		log.WithError(err).Fatal("build carver")
	}
	canvas.Sync()
	log.WithField("seed", seed).Debug("random source ready")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			log.WithError(err).Fatal("enter raw mode")
		}
		defer term.Restore(fd, state)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := make(chan byte)
	go readKeys(os.Stdin, keys)

	h := newHost(log, os.Stdout, c, canvas, cfg.StepDelay)
	if err := h.loop(ctx, keys); err != nil {
		log.WithError(err).Error("host loop failed")
	}
	os.Stdout.WriteString("\033[0m\r\n")
}

// configureLogger applies level and destination from cfg. Falls back to
// stderr when the log file cannot be opened.
func configureLogger(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.LogFile == "" {
		return
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("open log file, using stderr")
		return
	}
	log.SetOutput(f)
}
