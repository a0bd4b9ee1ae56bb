package world

// Constants holds the game-rule parameters announced by the host on the
// opening input line. All fields are positive integers save for the
// inspiration bonus, which is a small integer multiplier (typically 3).
type Constants struct {
	ExtractRatio            int
	MoveCostRatio           int
	DropoffCost             int
	ShipCost                int
	MaxTurns                int
	InspirationRadius       int
	InspirationShipCount    int
	InspiredBonusMultiplier int
	MaxHalite               int
}

// MoveCost returns the halite cost of leaving a cell holding the given
// amount of halite.
func (c Constants) MoveCost(halite int) int {
	return halite / c.MoveCostRatio
}
