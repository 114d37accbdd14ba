package elev

import (
	"time"

	"liftsim/src/types"
)

// StartSimMgr starts the goroutine that runs every command against sim, one at a time.
func StartSimMgr(sim *Simulation) *SimMgr {
	simMgr := &SimMgr{
		Cmds: make(chan SimCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(simMgr.done)
		for cmd := range simMgr.Cmds {
			cmd.Exec(sim)
		}
	}()
	return simMgr
}

func (simMgr *SimMgr) Submit(origin, destination int) (types.Passenger, bool) {
	type result struct {
		p  types.Passenger
		ok bool
	}
	reply := make(chan result)
	simMgr.Cmds <- SimCmd{
		Exec: func(sim *Simulation) {
			p, ok := sim.SubmitRequest(origin, destination)
			reply <- result{p, ok}
		},
	}
	r := <-reply
	return r.p, r.ok
}

// Tick is queued and returns without waiting for it to run.
func (simMgr *SimMgr) Tick(now time.Time) {
	simMgr.Cmds <- SimCmd{
		Exec: func(sim *Simulation) {
			sim.Tick(now)
		},
	}
}

// GetState returns a snapshot taken after every previously queued command.
func (simMgr *SimMgr) GetState() types.Snapshot {
	reply := make(chan types.Snapshot)
	simMgr.Cmds <- SimCmd{
		Exec: func(sim *Simulation) {
			reply <- sim.Snapshot()
		},
	}
	return <-reply
}

// Stop ends the manager goroutine. No command may be sent afterwards.
func (simMgr *SimMgr) Stop() {
	close(simMgr.Cmds)
	<-simMgr.done
}
