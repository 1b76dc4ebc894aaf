package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazecarve/carver"
	"github.com/katalvlaran/mazecarve/lattice"
	"github.com/katalvlaran/mazecarve/render"
)

// Key bytes recognised by the host loop.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	keySpace  = ' '
	keyQuit   = 'q'
)

// host paces a Carver and paints its Canvas. All fields are owned by the
// goroutine running loop.
type host struct {
	log    *logrus.Logger
	out    io.Writer
	grid   *lattice.Grid
	carver *carver.Carver
	canvas *render.Canvas
	delay  time.Duration

	runID    uuid.UUID
	steps    int
	finished bool
}

func newHost(log *logrus.Logger, out io.Writer, c *carver.Carver, cv *render.Canvas, delay time.Duration) *host {
	return &host{
		log:    log,
		out:    out,
		grid:   c.Grid(),
		carver: c,
		canvas: cv,
		delay:  delay,
	}
}

// loop steps once per tick and handles keys until Escape/q/Ctrl-C, a closed
// key channel or ctx cancellation.
func (h *host) loop(ctx context.Context, keys <-chan byte) error {
	ticker := time.NewTicker(h.delay)
	defer ticker.Stop()

	h.beginRun()
	if err := h.canvas.WriteFrame(h.out); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			switch k {
			case keyEscape, keyQuit, keyCtrlC:
				h.log.WithField("run", h.runID).Info("exit requested")
				return nil
			case keySpace:
				h.reset()
			}
		case <-ticker.C:
			if err := h.tick(); err != nil {
				return err
			}
		}
	}
}

// tick advances the carver once and repaints changed cells.
func (h *host) tick() error {
	if h.carver.IsDone() {
		return nil
	}
	h.carver.Step()
	h.steps++

	if err := h.canvas.WriteDirty(h.out); err != nil {
		return fmt.Errorf("write cells: %w", err)
	}
	if h.carver.IsDone() && !h.finished {
		h.finished = true
		h.logFinished()
	}
	return h.canvas.WriteStatus(h.out, h.status())
}

// reset restarts carving on the same lattice under a new run ID.
func (h *host) reset() {
	h.log.WithFields(logrus.Fields{
		"run":   h.runID,
		"steps": h.steps,
		"state": h.carver.State(),
	}).Info("reset requested")

	h.carver.Reset()
	h.canvas.Reset()
	h.beginRun()
}

func (h *host) beginRun() {
	h.runID = uuid.New()
	h.steps = 0
	h.finished = false
	h.log.WithFields(logrus.Fields{
		"run":    h.runID,
		"width":  h.grid.Width,
		"height": h.grid.Height,
	}).Info("carving started")
}

func (h *host) logFinished() {
	start := h.carver.StartIndex()
	rooms := 0
	for i := 0; i < h.grid.Len(); i++ {
		if h.grid.IsVisited(i) {
			rooms++
		}
	}
	fields := logrus.Fields{
		"run":   h.runID,
		"steps": h.steps,
		"rooms": rooms,
		"cells": h.grid.OpenCount(),
	}
	if reached := len(h.grid.Reachable(start)); reached != h.grid.OpenCount() {
		h.log.WithFields(fields).WithField("reached", reached).Error("maze is not connected")
		return
	}
	h.log.WithFields(fields).Info("carving finished")
}

func (h *host) status() string {
	return fmt.Sprintf("steps %d  depth %d  %s  [space] reset  [esc] quit",
		h.steps, h.carver.StackLen(), h.carver.State())
}

// readKeys forwards bytes from r to keys until r fails, then closes keys.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			keys <- b
		}
		if err != nil {
			return
		}
	}
}
