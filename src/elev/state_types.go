// State types are defined in elev package to make method receivers possible in sim.go and sim_mgr.go.
package elev

import (
	"liftsim/src/config"
	"liftsim/src/executor"
	"liftsim/src/types"
)

// Simulation owns one cabin and its passengers. Nothing else mutates them.
type Simulation struct {
	cfg     config.Config
	state   types.SimState
	nextID  int
	transit executor.Transit
}

// SimCmd is an operation run on the manager goroutine.
type SimCmd struct {
	Exec func(sim *Simulation)
}

// SimMgr owns a simulation and serializes access to it.
type SimMgr struct {
	Cmds chan SimCmd
	done chan struct{}
}
