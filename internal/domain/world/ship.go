package world

import (
	"fmt"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
)

// ShipID identifies a ship uniquely within a game.
type ShipID int

// Ship is an owned or enemy vessel: its id, owner, position and current
// cargo. Cargo is bounded by the constants' MaxHalite.
type Ship struct {
	id       ShipID
	owner    int
	position grid.Position
	cargo    int
}

// NewShip constructs a validated Ship.
func NewShip(id ShipID, owner int, position grid.Position, cargo, capacity int) (*Ship, error) {
	if cargo < 0 || cargo > capacity {
		return nil, fmt.Errorf("ship %d: cargo %d out of range [0,%d]", id, cargo, capacity)
	}
	return &Ship{id: id, owner: owner, position: position, cargo: cargo}, nil
}

func (s *Ship) ID() ShipID           { return s.id }
func (s *Ship) Owner() int           { return s.owner }
func (s *Ship) Position() grid.Position { return s.position }
func (s *Ship) Cargo() int           { return s.cargo }

// IsFull reports whether the ship has reached the given capacity.
func (s *Ship) IsFull(capacity int) bool {
	return s.cargo >= capacity
}

// Capacity returns remaining cargo room given the ship's capacity.
func (s *Ship) Capacity(capacity int) int {
	return capacity - s.cargo
}

// Dropoff is an owned drop-off structure (the shipyard is tracked
// separately on Player since it is always exactly one per player).
type Dropoff struct {
	ID       int
	Owner    int
	Position grid.Position
}
