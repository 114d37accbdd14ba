package executor

import (
	"log/slog"
	"time"

	"liftsim/src/config"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// openDoor stops the cabin and starts the dwell countdown.
func openDoor(cab *types.Cabin, now time.Time) {
	cab.State = types.Stopped
	cab.StateTime = now
	slog.Debug("Door open", "floor", cab.TargetFloor)
}

func doorTimedOut(cfg config.Config, cab types.Cabin, now time.Time) bool {
	return timer.Expired(cab.StateTime, now, cfg.DoorOpenDuration)
}

func idleTimedOut(cfg config.Config, cab types.Cabin, now time.Time) bool {
	return timer.Expired(cab.StateTime, now, cfg.IdleReturnDelay)
}
