package utils

import (
	"fmt"
	"io"
	"math"

	"liftsim/src/types"
)

// FloorOf maps a cabin position to the nearest floor index.
func FloorOf(position, floorHeight float64) int {
	return int(math.Round(position / floorHeight))
}

func FloorPosition(floor int, floorHeight float64) float64 {
	return float64(floor) * floorHeight
}

// AssignPosIndexes numbers passengers within their location group in list order.
// Inside passengers share one group; everyone else is grouped by origin floor.
func AssignPosIndexes(passengers []types.Passenger) {
	inside := 0
	perFloor := make(map[int]int)
	for i := range passengers {
		p := &passengers[i]
		if p.Location == types.Inside {
			p.PosIndex = inside
			inside++
			continue
		}
		p.PosIndex = perFloor[p.Origin]
		perFloor[p.Origin]++
	}
}

// ForEachAt calls action for every passenger at floor in the given location.
func ForEachAt(passengers []types.Passenger, floor int, loc types.Location, action func(i int, p types.Passenger)) {
	for i, p := range passengers {
		if p.Location == loc && p.Origin == floor {
			action(i, p)
		}
	}
}

// PrintStatus overwrites the current terminal line with the cabin status.
func PrintStatus(w io.Writer, snap types.Snapshot, floorHeight float64) {
	waiting := 0
	for _, p := range snap.Passengers {
		if p.Location != types.Inside {
			waiting++
		}
	}
	fmt.Fprintf(w, "\rFloor: %d | State: %-7s | Dir: %-4s | Target: %2d | Waiting: %d | Load: %.0f   \r",
		FloorOf(snap.Cabin.Position, floorHeight),
		snap.Cabin.State,
		snap.Cabin.Dir,
		snap.Cabin.TargetFloor,
		waiting,
		snap.Load)
}
