package dispatcher

import "liftsim/src/types"

// DeriveRequests rebuilds the request classes from the live passenger set.
//   - inside passengers add their destination and one unit of occupancy
//   - everyone else adds their origin to the hall calls of their travel direction
//
// Transiting passengers stay hall calls until they are aboard, which keeps the cabin at their floor.
func DeriveRequests(numFloors int, passengers []types.Passenger) Requests {
	req := Requests{
		Destinations: newFloorSet(numFloors),
		UpCalls:      newFloorSet(numFloors),
		DownCalls:    newFloorSet(numFloors),
	}
	for _, p := range passengers {
		if p.Location == types.Inside {
			req.Destinations[p.Destination] = true
			req.Occupancy++
			continue
		}
		if p.Dir() == types.Dir_Up {
			req.UpCalls[p.Origin] = true
		} else {
			req.DownCalls[p.Origin] = true
		}
	}
	return req
}
