package executor

import (
	"testing"

	"liftsim/src/config"
	"liftsim/src/types"
)

func TestBoardAlightsBeforeAdmitting(t *testing.T) {
	cfg := config.Default()
	cfg.MaxWeight = 2 * cfg.PassengerWeight
	st := stateAt(cfg, 1, types.Stopped, types.Dir_Up,
		types.Passenger{ID: 0, Origin: 3, Destination: 1, Location: types.Inside},
		types.Passenger{ID: 1, Origin: 3, Destination: 0, Location: types.Inside},
		types.Passenger{ID: 2, Origin: 1, Destination: 0, Location: types.Waiting},
	)
	tr := &recordingTransit{}
	Board(cfg, st, tr)

	if len(st.Passengers) != 2 {
		t.Fatalf("passengers = %+v, want the arrived one removed", st.Passengers)
	}
	if st.Passengers[1].ID != 2 || st.Passengers[1].Location != types.Transiting {
		t.Errorf("waiting passenger not admitted into freed space: %+v", st.Passengers[1])
	}
	if len(tr.begun) != 1 || tr.begun[0] != 2 {
		t.Errorf("transit begun for %v, want [2]", tr.begun)
	}
}

func TestBoardRespectsMaxWeight(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 3, types.Stopped, types.Dir_Up)
	for i := 0; i < 12; i++ {
		st.Passengers = append(st.Passengers, types.Passenger{ID: i, Origin: 3, Destination: 0, Location: types.Waiting})
	}
	st.Passengers[0].Location = types.Transiting

	Board(cfg, st, &recordingTransit{})

	if load := Load(cfg, st.Passengers); load > cfg.MaxWeight {
		t.Fatalf("load %v exceeds max %v", load, cfg.MaxWeight)
	}
	maxAboard := int(cfg.MaxWeight / cfg.PassengerWeight)
	admitted := 0
	for i, p := range st.Passengers {
		if p.Location == types.Transiting {
			admitted++
			if i >= maxAboard {
				t.Errorf("passenger %d admitted out of arrival order", p.ID)
			}
		}
	}
	if admitted != maxAboard {
		t.Errorf("%d aboard or boarding, want %d", admitted, maxAboard)
	}
}

func TestBoardOnlyMatchingDirection(t *testing.T) {
	cfg := config.Default()
	st := stateAt(cfg, 2, types.Stopped, types.Dir_Down,
		types.Passenger{ID: 0, Origin: 2, Destination: 0, Location: types.Waiting},
		types.Passenger{ID: 1, Origin: 2, Destination: 3, Location: types.Waiting},
		types.Passenger{ID: 2, Origin: 1, Destination: 3, Location: types.Waiting},
	)
	Board(cfg, st, &recordingTransit{})

	want := []types.Location{types.Waiting, types.Transiting, types.Waiting}
	for i, p := range st.Passengers {
		if p.Location != want[i] {
			t.Errorf("passenger %d location %v, want %v", p.ID, p.Location, want[i])
		}
	}
}

func TestBoardResolvesDirectionFromIdle(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name    string
		ps      []types.Passenger
		wantDir types.Direction
	}{
		{"up preferred", []types.Passenger{
			{ID: 0, Origin: 2, Destination: 3, Location: types.Waiting},
			{ID: 1, Origin: 2, Destination: 0, Location: types.Waiting},
		}, types.Dir_Up},
		{"down only", []types.Passenger{
			{ID: 0, Origin: 2, Destination: 3, Location: types.Waiting},
		}, types.Dir_Down},
		{"nobody here", []types.Passenger{
			{ID: 0, Origin: 1, Destination: 3, Location: types.Waiting},
		}, types.Dir_None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := stateAt(cfg, 2, types.Stopped, types.Dir_None, tt.ps...)
			Board(cfg, st, &recordingTransit{})
			if st.Cabin.Dir != tt.wantDir {
				t.Errorf("cabin dir %v, want %v", st.Cabin.Dir, tt.wantDir)
			}
			for _, p := range st.Passengers {
				boarding := p.Location == types.Transiting
				if boarding != (p.Origin == 2 && p.Dir() == tt.wantDir) {
					t.Errorf("passenger %d boarding=%v with dir %v", p.ID, boarding, tt.wantDir)
				}
			}
		})
	}
}
