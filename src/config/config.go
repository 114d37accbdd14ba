package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	NumFloors        = 4
	FloorHeight      = 100.0
	CabinSpeed       = 2.5 // units per tick
	PassengerWeight  = 70.0
	MaxWeight        = 600.0
	FullThreshold    = 6
	DoorOpenDuration = 1500 * time.Millisecond
	IdleReturnDelay  = 5 * time.Second
	TickInterval     = 33 * time.Millisecond
	BoardingSpeed    = 4.0 // units per tick, walk animation only
)

var ErrInvalid = errors.New("invalid config")

// Config is fixed when a simulation is created and never changes afterwards.
type Config struct {
	NumFloors        int
	FloorHeight      float64
	CabinSpeed       float64
	PassengerWeight  float64
	MaxWeight        float64
	FullThreshold    int
	DoorOpenDuration time.Duration
	IdleReturnDelay  time.Duration
	HomeFloor        int
}

// Default returns the compiled-in configuration. The home floor is the ground floor, i.e. the highest index.
func Default() Config {
	return Config{
		NumFloors:        NumFloors,
		FloorHeight:      FloorHeight,
		CabinSpeed:       CabinSpeed,
		PassengerWeight:  PassengerWeight,
		MaxWeight:        MaxWeight,
		FullThreshold:    FullThreshold,
		DoorOpenDuration: DoorOpenDuration,
		IdleReturnDelay:  IdleReturnDelay,
		HomeFloor:        NumFloors - 1,
	}
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumFloors < 2:
		return fmt.Errorf("%w: need at least 2 floors, got %d", ErrInvalid, cfg.NumFloors)
	case cfg.FloorHeight <= 0:
		return fmt.Errorf("%w: floor height must be positive, got %v", ErrInvalid, cfg.FloorHeight)
	case cfg.CabinSpeed <= 0 || cfg.CabinSpeed > cfg.FloorHeight:
		return fmt.Errorf("%w: cabin speed must be in (0, %v], got %v", ErrInvalid, cfg.FloorHeight, cfg.CabinSpeed)
	case cfg.PassengerWeight <= 0:
		return fmt.Errorf("%w: passenger weight must be positive, got %v", ErrInvalid, cfg.PassengerWeight)
	case cfg.MaxWeight < cfg.PassengerWeight:
		return fmt.Errorf("%w: max weight %v below one passenger", ErrInvalid, cfg.MaxWeight)
	case cfg.FullThreshold < 1:
		return fmt.Errorf("%w: full threshold must be at least 1, got %d", ErrInvalid, cfg.FullThreshold)
	case cfg.MaxWeight < float64(cfg.FullThreshold)*cfg.PassengerWeight:
		// A cabin that turns passengers away before it counts as full would keep stopping for them.
		return fmt.Errorf("%w: max weight %v cannot carry %d passengers of %v", ErrInvalid, cfg.MaxWeight, cfg.FullThreshold, cfg.PassengerWeight)
	case cfg.DoorOpenDuration < 0 || cfg.IdleReturnDelay < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalid)
	case cfg.HomeFloor < 0 || cfg.HomeFloor >= cfg.NumFloors:
		return fmt.Errorf("%w: home floor %d outside [0, %d)", ErrInvalid, cfg.HomeFloor, cfg.NumFloors)
	}
	return nil
}
