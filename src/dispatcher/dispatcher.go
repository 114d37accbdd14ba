package dispatcher

import (
	"log/slog"
	"time"

	"liftsim/src/config"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Decide chooses the cabin's next target and updates its state and direction.
// It is called when the cabin is idle with waiting passengers, and after every boarding.
//  1. No requests: go idle.
//  2. No direction: take the nearest candidate floor.
//  3. Otherwise scan ahead in the current direction, then once in the opposite one.
func Decide(cfg config.Config, cab *types.Cabin, passengers []types.Passenger, now time.Time) {
	current := utils.FloorOf(cab.Position, cfg.FloorHeight)
	req := DeriveRequests(cfg.NumFloors, passengers)

	if req.Empty() {
		goIdle(cab, now)
		return
	}

	// A full cabin passes hall calls and only serves its own destinations.
	full := req.Occupancy >= cfg.FullThreshold

	if cab.Dir == types.Dir_None {
		target := nearest(current, req, full, cfg.NumFloors)
		if target == -1 {
			goIdle(cab, now)
			return
		}
		cab.TargetFloor = target
		if target == current {
			openDoor(cab, now)
		} else {
			cab.State = types.Moving
			cab.Dir = types.DirTowards(current, target)
		}
		slog.Debug("Dispatch: nearest target", "floor", current, "target", target, "dir", cab.Dir, "full", full)
		return
	}

	for i := 0; i < 2; i++ {
		if next := scan(current, cab.Dir, req, full, cfg.NumFloors); next != -1 {
			cab.TargetFloor = next
			if next == current {
				openDoor(cab, now)
			} else {
				cab.State = types.Moving
			}
			slog.Debug("Dispatch: scan target", "floor", current, "target", next, "dir", cab.Dir, "full", full)
			return
		}
		cab.Dir = cab.Dir.Opposite()
	}

	slog.Debug("Dispatch: no reachable request", "floor", current)
	goIdle(cab, now)
}

// Divert retargets a cabin heading down to the home floor when someone is waiting on the way.
// Only home-bound trips divert, and a full cabin keeps going.
func Divert(cfg config.Config, cab *types.Cabin, passengers []types.Passenger) bool {
	if cab.Dir != types.Dir_Down || cab.TargetFloor != cfg.HomeFloor {
		return false
	}
	req := DeriveRequests(cfg.NumFloors, passengers)
	if req.Occupancy >= cfg.FullThreshold {
		return false
	}
	current := utils.FloorOf(cab.Position, cfg.FloorHeight)
	for _, p := range passengers {
		if p.Location == types.Waiting && p.Origin >= current && p.Origin < cab.TargetFloor {
			slog.Debug("Dispatch: diverting to waiting passenger", "from", cab.TargetFloor, "to", p.Origin, "passenger", p.ID)
			cab.TargetFloor = p.Origin
			return true
		}
	}
	return false
}

// nearest picks the candidate closest to current. Destinations are considered
// before up calls and up calls before down calls, each in ascending floor
// order, and only a strictly closer floor replaces the pick. A destination
// therefore wins a tie against a hall call.
func nearest(current int, req Requests, full bool, numFloors int) int {
	candidates := req.Destinations.Floors()
	if !full {
		candidates = append(candidates, req.UpCalls.Floors()...)
		candidates = append(candidates, req.DownCalls.Floors()...)
	}
	closest, minDist := -1, numFloors
	for _, floor := range candidates {
		if dist := abs(floor - current); dist < minDist {
			closest, minDist = floor, dist
		}
	}
	return closest
}

// scan walks from current to the edge in dir and returns the first floor with
// a destination or, unless full, a hall call in the same direction.
func scan(current int, dir types.Direction, req Requests, full bool, numFloors int) int {
	step := 1
	if dir == types.Dir_Up {
		step = -1
	}
	calls := req.Calls(dir)
	for f := current; f >= 0 && f < numFloors; f += step {
		if req.Destinations.Has(f) || (!full && calls.Has(f)) {
			return f
		}
	}
	return -1
}

func goIdle(cab *types.Cabin, now time.Time) {
	if cab.State != types.Idle {
		cab.StateTime = now
		slog.Debug("Dispatch: going idle")
	}
	cab.State = types.Idle
	cab.Dir = types.Dir_None
	cab.TargetFloor = -1
}

func openDoor(cab *types.Cabin, now time.Time) {
	cab.State = types.Stopped
	cab.StateTime = now
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
