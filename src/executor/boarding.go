package executor

import (
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Board runs once per stop after the door dwell:
//  1. passengers for this floor leave
//  2. the boarding direction is the cabin's, or inferred from who is waiting here
//  3. waiting passengers going that way are admitted in list order while the weight limit allows
//
// Admitted passengers are handed to the transit layer and stay Transiting until it reports them aboard.
func Board(cfg config.Config, st *types.SimState, transit Transit) {
	cab := &st.Cabin
	current := utils.FloorOf(cab.Position, cfg.FloorHeight)

	st.Passengers = alight(st.Passengers, current)

	load := Load(cfg, st.Passengers)

	boardDir := cab.Dir
	if boardDir == types.Dir_None {
		boardDir = inferBoardingDir(st.Passengers, current)
	}

	var admitted []int
	utils.ForEachAt(st.Passengers, current, types.Waiting, func(i int, p types.Passenger) {
		if boardDir == types.Dir_None || p.Dir() != boardDir {
			return
		}
		if load+cfg.PassengerWeight > cfg.MaxWeight {
			slog.Debug("Boarding: over weight, passenger waits", "passenger", p.ID, "load", load)
			return
		}
		admitted = append(admitted, i)
		load += cfg.PassengerWeight
	})
	for _, i := range admitted {
		st.Passengers[i].Location = types.Transiting
		transit.Begin(st.Passengers[i])
		slog.Debug("Boarding", "passenger", st.Passengers[i].ID, "floor", current, "dir", boardDir)
	}

	if cab.Dir == types.Dir_None && boardDir != types.Dir_None {
		cab.Dir = boardDir
	}
	utils.AssignPosIndexes(st.Passengers)
}

// Load is the weight of everyone inside or walking in.
func Load(cfg config.Config, passengers []types.Passenger) float64 {
	var load float64
	for _, p := range passengers {
		if p.Location == types.Inside || p.Location == types.Transiting {
			load += cfg.PassengerWeight
		}
	}
	return load
}

// alight drops inside passengers whose destination is floor. The survivors are collected into a new slice.
func alight(passengers []types.Passenger, floor int) []types.Passenger {
	kept := make([]types.Passenger, 0, len(passengers))
	for _, p := range passengers {
		if p.Location == types.Inside && p.Destination == floor {
			slog.Debug("Alighting", "passenger", p.ID, "floor", floor)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// inferBoardingDir prefers Dir_Up when passengers here want both ways.
func inferBoardingDir(passengers []types.Passenger, floor int) types.Direction {
	wantsUp, wantsDown := false, false
	utils.ForEachAt(passengers, floor, types.Waiting, func(_ int, p types.Passenger) {
		switch p.Dir() {
		case types.Dir_Up:
			wantsUp = true
		case types.Dir_Down:
			wantsDown = true
		}
	})
	switch {
	case wantsUp:
		return types.Dir_Up
	case wantsDown:
		return types.Dir_Down
	}
	return types.Dir_None
}
