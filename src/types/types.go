package types

import "time"

// Floor indices run from 0 (top floor) to NumFloors-1 (ground floor).
// Dir_Up is travel toward a lower index, Dir_Down toward a higher index.
// Display labels are derived from indices only in the display package.
type Direction int

const (
	Dir_None Direction = iota
	Dir_Up
	Dir_Down
)

func (d Direction) String() string {
	switch d {
	case Dir_Up:
		return "up"
	case Dir_Down:
		return "down"
	}
	return "none"
}

// Opposite returns Dir_None for Dir_None.
func (d Direction) Opposite() Direction {
	switch d {
	case Dir_Up:
		return Dir_Down
	case Dir_Down:
		return Dir_Up
	}
	return Dir_None
}

// DirTowards returns the direction of travel from one floor index to another.
func DirTowards(from, to int) Direction {
	switch {
	case to < from:
		return Dir_Up
	case to > from:
		return Dir_Down
	}
	return Dir_None
}

type CabinState int

const (
	Idle CabinState = iota
	Moving
	Stopped
)

func (s CabinState) String() string {
	return [...]string{"idle", "moving", "stopped"}[s]
}

type Location int

const (
	Waiting Location = iota
	Transiting
	Inside
)

func (l Location) String() string {
	return [...]string{"waiting", "transiting", "inside"}[l]
}

type Passenger struct {
	ID          int
	Origin      int
	Destination int
	Location    Location
	PosIndex    int // slot within its location group, for layout only
}

func (p Passenger) Dir() Direction {
	return DirTowards(p.Origin, p.Destination)
}

type Cabin struct {
	Position    float64
	State       CabinState
	Dir         Direction
	TargetFloor int
	StateTime   time.Time // door dwell start, or idle countdown start
}

// SimState is everything the tick mutates.
type SimState struct {
	Cabin      Cabin
	Passengers []Passenger
}

// Snapshot is a copy of SimState handed to readers between ticks.
type Snapshot struct {
	Cabin      Cabin
	Passengers []Passenger
	Load       float64 // inside passengers only
}
