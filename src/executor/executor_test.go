package executor

import (
	"testing"
	"time"

	"liftsim/src/config"
	"liftsim/src/types"
)

var t0 = time.Unix(1000, 0)

// recordingTransit completes transits only when told to.
type recordingTransit struct {
	begun []int
	ready []int
}

func (r *recordingTransit) Begin(p types.Passenger) { r.begun = append(r.begun, p.ID) }

func (r *recordingTransit) Advance(float64) []int {
	done := r.ready
	r.ready = nil
	return done
}

func stateAt(cfg config.Config, floor int, state types.CabinState, dir types.Direction, ps ...types.Passenger) *types.SimState {
	return &types.SimState{
		Cabin: types.Cabin{
			Position:    float64(floor) * cfg.FloorHeight,
			State:       state,
			Dir:         dir,
			TargetFloor: -1,
			StateTime:   t0,
		},
		Passengers: ps,
	}
}

func TestTickMovingStepsAndSnaps(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 3, types.Moving, types.Dir_Up)
	st.Cabin.TargetFloor = 2

	Tick(cfg, st, &recordingTransit{}, t0)
	if st.Cabin.Position != 300-cfg.CabinSpeed || st.Cabin.State != types.Moving {
		t.Fatalf("after one tick: position %v state %v", st.Cabin.Position, st.Cabin.State)
	}

	st.Cabin.Position = 201
	now := t0.Add(time.Second)
	Tick(cfg, st, &recordingTransit{}, now)
	if st.Cabin.Position != 200 {
		t.Errorf("position %v, want snap to 200", st.Cabin.Position)
	}
	if st.Cabin.State != types.Stopped || !st.Cabin.StateTime.Equal(now) {
		t.Errorf("arrival did not open door: %+v", st.Cabin)
	}
}

func TestTickMovingWithoutTargetGoesIdle(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 1, types.Moving, types.Dir_Down)
	Tick(cfg, st, &recordingTransit{}, t0)
	if st.Cabin.State != types.Idle || st.Cabin.Dir != types.Dir_None {
		t.Errorf("cabin = %+v, want idle", st.Cabin)
	}
}

func TestTickStoppedWaitsForDwell(t *testing.T) {
	cfg := config.Default()
	p := types.Passenger{ID: 1, Origin: 0, Destination: 2, Location: types.Inside}
	st := stateAt(cfg, 2, types.Stopped, types.Dir_Down, p)
	st.Cabin.TargetFloor = 2

	Tick(cfg, st, &recordingTransit{}, t0.Add(cfg.DoorOpenDuration))
	if len(st.Passengers) != 1 || st.Cabin.State != types.Stopped {
		t.Fatalf("acted before dwell expired: %+v", st)
	}

	Tick(cfg, st, &recordingTransit{}, t0.Add(cfg.DoorOpenDuration+time.Millisecond))
	if len(st.Passengers) != 0 {
		t.Errorf("passenger did not alight: %+v", st.Passengers)
	}
	if st.Cabin.State != types.Idle {
		t.Errorf("state %v, want idle after last drop-off", st.Cabin.State)
	}
}

func TestTickIdleDispatchesWaiting(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 3, types.Idle, types.Dir_None,
		types.Passenger{ID: 1, Origin: 1, Destination: 0, Location: types.Waiting})
	Tick(cfg, st, &recordingTransit{}, t0)
	if st.Cabin.State != types.Moving || st.Cabin.TargetFloor != 1 || st.Cabin.Dir != types.Dir_Up {
		t.Errorf("cabin = %+v, want moving up to 1", st.Cabin)
	}
}

func TestTickIdleReturnsHome(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 0, types.Idle, types.Dir_None)

	Tick(cfg, st, &recordingTransit{}, t0.Add(cfg.IdleReturnDelay))
	if st.Cabin.State != types.Idle {
		t.Fatalf("left before idle delay: %+v", st.Cabin)
	}

	Tick(cfg, st, &recordingTransit{}, t0.Add(cfg.IdleReturnDelay+time.Millisecond))
	if st.Cabin.State != types.Moving || st.Cabin.TargetFloor != cfg.HomeFloor || st.Cabin.Dir != types.Dir_Down {
		t.Errorf("cabin = %+v, want moving down to home", st.Cabin)
	}
}

func TestTickIdleAtHomeStays(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, cfg.HomeFloor, types.Idle, types.Dir_None)
	Tick(cfg, st, &recordingTransit{}, t0.Add(time.Hour))
	if st.Cabin.State != types.Idle || st.Cabin.TargetFloor != -1 {
		t.Errorf("cabin at home moved: %+v", st.Cabin)
	}
}

func TestTickDivertsHomeTrip(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 0, types.Moving, types.Dir_Down,
		types.Passenger{ID: 1, Origin: 2, Destination: 0, Location: types.Waiting})
	st.Cabin.TargetFloor = cfg.HomeFloor

	Tick(cfg, st, &recordingTransit{}, t0)
	if st.Cabin.TargetFloor != 2 {
		t.Errorf("target %d, want diversion to 2", st.Cabin.TargetFloor)
	}
}

func TestTickCompletesTransits(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 1, types.Stopped, types.Dir_Up,
		types.Passenger{ID: 4, Origin: 1, Destination: 0, Location: types.Transiting},
		types.Passenger{ID: 5, Origin: 1, Destination: 0, Location: types.Transiting})
	tr := &recordingTransit{ready: []int{5}}

	Tick(cfg, st, tr, t0)
	if st.Passengers[0].Location != types.Transiting || st.Passengers[1].Location != types.Inside {
		t.Errorf("locations = %v, %v", st.Passengers[0].Location, st.Passengers[1].Location)
	}
	if st.Passengers[1].PosIndex != 0 || st.Passengers[0].PosIndex != 0 {
		t.Errorf("layout not recomputed: %+v", st.Passengers)
	}
}
