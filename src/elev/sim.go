package elev

import (
	"fmt"
	"log/slog"
	"time"

	"liftsim/src/config"
	"liftsim/src/executor"
	"liftsim/src/types"
	"liftsim/src/utils"

	"github.com/tiendc/go-deepcopy"
)

// New parks an idle cabin at the home floor.
func New(cfg config.Config, transit executor.Transit) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	sim := &Simulation{
		cfg: cfg,
		state: types.SimState{
			Cabin: types.Cabin{
				Position:    utils.FloorPosition(cfg.HomeFloor, cfg.FloorHeight),
				State:       types.Idle,
				Dir:         types.Dir_None,
				TargetFloor: -1,
			},
		},
		transit: transit,
	}
	slog.Debug("Simulation initialized", "floors", cfg.NumFloors, "home", cfg.HomeFloor)
	return sim, nil
}

// SubmitRequest adds a waiting passenger. Requests with equal or out-of-range floors are dropped.
func (sim *Simulation) SubmitRequest(origin, destination int) (types.Passenger, bool) {
	if origin == destination || !sim.validFloor(origin) || !sim.validFloor(destination) {
		slog.Warn("Request rejected", "origin", origin, "destination", destination)
		return types.Passenger{}, false
	}
	p := types.Passenger{
		ID:          sim.nextID,
		Origin:      origin,
		Destination: destination,
		Location:    types.Waiting,
	}
	sim.nextID++
	sim.state.Passengers = append(sim.state.Passengers, p)
	utils.AssignPosIndexes(sim.state.Passengers)
	p = sim.state.Passengers[len(sim.state.Passengers)-1]
	slog.Info("Request submitted", "passenger", FormatPassenger(p))
	return p, true
}

func (sim *Simulation) Tick(now time.Time) {
	executor.Tick(sim.cfg, &sim.state, sim.transit, now)
}

// Snapshot copies the state so readers never see a tick half applied.
// Load only weighs passengers already inside; walkers are not on the scale yet.
func (sim *Simulation) Snapshot() types.Snapshot {
	snap := types.Snapshot{
		Cabin: sim.state.Cabin,
		Load:  sim.insideWeight(),
	}
	if err := deepcopy.Copy(&snap.Passengers, sim.state.Passengers); err != nil {
		panic(err)
	}
	return snap
}

func (sim *Simulation) insideWeight() float64 {
	n := 0
	for _, p := range sim.state.Passengers {
		if p.Location == types.Inside {
			n++
		}
	}
	return float64(n) * sim.cfg.PassengerWeight
}

func (sim *Simulation) validFloor(floor int) bool {
	return floor >= 0 && floor < sim.cfg.NumFloors
}
