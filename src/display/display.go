// Package display draws snapshots as text and parses typed requests.
// It is the only place floor labels appear: label 0 is the ground floor,
// which is the highest index in the core.
package display

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"liftsim/src/config"
	"liftsim/src/types"
	"liftsim/src/utils"
)

func LabelOf(index, numFloors int) int {
	return numFloors - 1 - index
}

func IndexOf(label, numFloors int) int {
	return numFloors - 1 - label
}

// ParseRequest reads "<from> <to>" or "<from>-><to>" in floor labels and returns floor indices.
func ParseRequest(line string, numFloors int) (origin, destination int, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, "->", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want two floors, got %q", line)
	}
	labels := make([]int, 2)
	for i, f := range fields {
		label, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, fmt.Errorf("parse floor %q: %w", f, err)
		}
		if label < 0 || label >= numFloors {
			return 0, 0, fmt.Errorf("floor %d outside 0..%d", label, numFloors-1)
		}
		labels[i] = label
	}
	return IndexOf(labels[0], numFloors), IndexOf(labels[1], numFloors), nil
}

// Render draws the shaft top floor first. Walking passengers are marked with '*'.
func Render(w io.Writer, cfg config.Config, snap types.Snapshot) {
	cabinFloor := utils.FloorOf(snap.Cabin.Position, cfg.FloorHeight)

	var inside []types.Passenger
	outside := make(map[int][]types.Passenger)
	for _, p := range snap.Passengers {
		if p.Location == types.Inside {
			inside = append(inside, p)
			continue
		}
		outside[p.Origin] = append(outside[p.Origin], p)
	}
	byPos := func(ps []types.Passenger) {
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].PosIndex < ps[j].PosIndex })
	}
	byPos(inside)

	var b strings.Builder
	for f := 0; f < cfg.NumFloors; f++ {
		ps := outside[f]
		byPos(ps)
		queue := make([]string, 0, len(ps))
		for _, p := range ps {
			mark := ""
			if p.Location == types.Transiting {
				mark = "*"
			}
			queue = append(queue, fmt.Sprintf("%s->%d", mark, LabelOf(p.Destination, cfg.NumFloors)))
		}

		shaft := "|   |"
		if f == cabinFloor {
			riders := make([]string, 0, len(inside))
			for _, p := range inside {
				riders = append(riders, strconv.Itoa(LabelOf(p.Destination, cfg.NumFloors)))
			}
			door := " "
			if snap.Cabin.State == types.Stopped {
				door = "="
			}
			shaft = fmt.Sprintf("[%s%s%s]", door, strings.Join(riders, " "), door)
		}
		fmt.Fprintf(&b, "Floor %d | %-30s %s\n", LabelOf(f, cfg.NumFloors), strings.Join(queue, " "), shaft)
	}
	fmt.Fprintf(&b, "Load: %.0f kg (Max: %.0f kg) | %s %s\n", snap.Load, cfg.MaxWeight, snap.Cabin.State, snap.Cabin.Dir)
	io.WriteString(w, b.String())
}
