package dispatcher

import "liftsim/src/types"

// FloorSet is a floor-indexed membership set. Repeated inserts collapse.
type FloorSet []bool

func newFloorSet(numFloors int) FloorSet {
	return make(FloorSet, numFloors)
}

func (s FloorSet) Has(floor int) bool {
	return floor >= 0 && floor < len(s) && s[floor]
}

func (s FloorSet) Empty() bool {
	for _, v := range s {
		if v {
			return false
		}
	}
	return true
}

// Floors lists members in ascending index order.
func (s FloorSet) Floors() []int {
	var floors []int
	for f, v := range s {
		if v {
			floors = append(floors, f)
		}
	}
	return floors
}

type Requests struct {
	Destinations FloorSet
	UpCalls      FloorSet
	DownCalls    FloorSet
	Occupancy    int
}

func (r Requests) Empty() bool {
	return r.Destinations.Empty() && r.UpCalls.Empty() && r.DownCalls.Empty()
}

// Calls returns the hall calls for a travel direction, or nil for Dir_None.
func (r Requests) Calls(dir types.Direction) FloorSet {
	switch dir {
	case types.Dir_Up:
		return r.UpCalls
	case types.Dir_Down:
		return r.DownCalls
	}
	return nil
}
