package world

import "github.com/MyForking/halite3-bot-1/internal/domain/grid"

// Player is one competitor: its treasury, shipyard location and the ids
// of everything it owns. ShipIDs/DropoffIDs are populated by the turn
// parser each frame; lookups go through World's ship/dropoff maps.
type Player struct {
	ID              int
	Halite          int
	ShipyardPos     grid.Position
	ShipIDs         []ShipID
	DropoffIDs      []int
}
