// Package anim owns the walk of boarding passengers from their floor into the cabin.
// Records are keyed by passenger id and never embedded in the core's passengers.
package anim

import (
	"math"
	"sort"

	"liftsim/src/config"
	"liftsim/src/types"
)

const (
	wallStartX      = 100
	wallWidth       = 500
	cabinX          = wallStartX + wallWidth - 150
	cabinWidth      = 140
	cabinHeight     = 100
	passengerWidth  = 12
	passengerHeight = 42
	passengerGap    = 5
)

type Point struct {
	X, Y float64
}

type record struct {
	pos  Point
	slot int
}

// Walker moves each boarding passenger at a fixed speed toward its slot in the cabin.
// The slot follows the cabin, so a walk that outlasts the stop still ends aboard.
type Walker struct {
	cfg     config.Config
	speed   float64
	records map[int]*record
}

func NewWalker(cfg config.Config, speed float64) *Walker {
	return &Walker{
		cfg:     cfg,
		speed:   speed,
		records: make(map[int]*record),
	}
}

func (w *Walker) Begin(p types.Passenger) {
	w.records[p.ID] = &record{
		pos: Point{
			X: wallStartX + 20 + float64(p.PosIndex*(passengerWidth+passengerGap)),
			Y: float64(p.Origin)*w.cfg.FloorHeight + w.cfg.FloorHeight - passengerHeight,
		},
		slot: p.PosIndex,
	}
}

// Advance moves every walk one step and returns the ids that reached the cabin, in ascending order.
func (w *Walker) Advance(cabinPosition float64) []int {
	var done []int
	for id, r := range w.records {
		target := w.cabinSlot(cabinPosition, r.slot)
		dx, dy := target.X-r.pos.X, target.Y-r.pos.Y
		dist := math.Hypot(dx, dy)
		if dist < w.speed {
			done = append(done, id)
			delete(w.records, id)
			continue
		}
		r.pos.X += w.speed * dx / dist
		r.pos.Y += w.speed * dy / dist
	}
	sort.Ints(done)
	return done
}

// Position reports where a walking passenger currently is.
// Only the goroutine that calls Advance may call it. The host renders from
// snapshots and never does; tests use it to watch a walk.
func (w *Walker) Position(id int) (Point, bool) {
	r, ok := w.records[id]
	if !ok {
		return Point{}, false
	}
	return r.pos, true
}

func (w *Walker) cabinSlot(cabinPosition float64, slot int) Point {
	step := float64(passengerWidth + passengerGap)
	screenY := cabinPosition + w.cfg.FloorHeight - cabinHeight
	return Point{
		X: cabinX + (cabinWidth-float64(w.cfg.FullThreshold)*step)/2 + float64(slot)*step,
		Y: screenY + cabinHeight - passengerHeight,
	}
}

// Instant finishes every walk on the next Advance. Used headless and in tests.
type Instant struct {
	pending []int
}

func (in *Instant) Begin(p types.Passenger) {
	in.pending = append(in.pending, p.ID)
}

func (in *Instant) Advance(float64) []int {
	done := in.pending
	in.pending = nil
	return done
}
