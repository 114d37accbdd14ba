package executor

import (
	"log/slog"
	"math"
	"time"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Transit is the animation layer that walks boarding passengers into the cabin.
// The core calls Begin once per admitted passenger and learns from Advance which ones are aboard.
type Transit interface {
	Begin(p types.Passenger)
	Advance(cabinPosition float64) []int
}

// Tick advances the simulation by one step. It is the only place state changes after a request is submitted.
//   - completes passengers whose walk into the cabin finished
//   - idle: dispatches waiting passengers, or returns home once the idle delay has passed
//   - moving: steps toward the target and opens the door on arrival
//   - stopped: boards and dispatches once the door dwell has passed
func Tick(cfg config.Config, st *types.SimState, transit Transit, now time.Time) {
	completeTransits(st, transit.Advance(st.Cabin.Position))

	cab := &st.Cabin
	switch cab.State {
	case types.Idle:
		if anyOutside(st.Passengers) {
			dispatcher.Decide(cfg, cab, st.Passengers, now)
			return
		}
		current := utils.FloorOf(cab.Position, cfg.FloorHeight)
		if current != cfg.HomeFloor && idleTimedOut(cfg, *cab, now) {
			cab.TargetFloor = cfg.HomeFloor
			cab.State = types.Moving
			cab.Dir = types.DirTowards(current, cfg.HomeFloor)
			slog.Debug("Returning to home floor", "floor", current, "home", cfg.HomeFloor)
		}

	case types.Moving:
		if cab.TargetFloor == -1 {
			slog.Error("Moving without a target, going idle", "position", cab.Position)
			cab.State = types.Idle
			cab.Dir = types.Dir_None
			cab.StateTime = now
			return
		}
		move(cfg, st, now)

	case types.Stopped:
		if !doorTimedOut(cfg, *cab, now) {
			return
		}
		Board(cfg, st, transit)
		dispatcher.Decide(cfg, cab, st.Passengers, now)
	}
}

// move steps the cabin one increment toward its target, snapping onto the floor when closer than one step.
func move(cfg config.Config, st *types.SimState, now time.Time) {
	cab := &st.Cabin
	targetPos := utils.FloorPosition(cab.TargetFloor, cfg.FloorHeight)
	if math.Abs(cab.Position-targetPos) < cfg.CabinSpeed {
		cab.Position = targetPos
		openDoor(cab, now)
		return
	}
	if cab.Position > targetPos {
		cab.Position -= cfg.CabinSpeed
	} else {
		cab.Position += cfg.CabinSpeed
	}
	dispatcher.Divert(cfg, cab, st.Passengers)
}

func completeTransits(st *types.SimState, done []int) {
	if len(done) == 0 {
		return
	}
	aboard := make(map[int]bool, len(done))
	for _, id := range done {
		aboard[id] = true
	}
	for i := range st.Passengers {
		p := &st.Passengers[i]
		if p.Location == types.Transiting && aboard[p.ID] {
			p.Location = types.Inside
		}
	}
	utils.AssignPosIndexes(st.Passengers)
}

func anyOutside(passengers []types.Passenger) bool {
	for _, p := range passengers {
		if p.Location != types.Inside {
			return true
		}
	}
	return false
}
