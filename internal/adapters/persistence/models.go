// Package persistence holds the optional post-match telemetry store: one
// row per turn, written when config.TelemetryConfig.Enabled is set, for
// offline replay analysis across matches.
package persistence

import "time"

// TurnRecord is one turn's outcome, keyed by the run id the bot was
// started with (§6's -r/--runid) plus the turn number.
type TurnRecord struct {
	ID                uint `gorm:"primaryKey"`
	RunID             string `gorm:"index"`
	Turn              int    `gorm:"index"`
	ShipCount         int
	HaliteBanked      int
	TotalSpent        int
	AvgReturnLength   float64
	MoveCommands      int
	SpawnCommands     int
	ConvertCommands   int
	InfeasibleActors  int
	RecordedAt        time.Time
}
