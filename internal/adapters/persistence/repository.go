package persistence

import "gorm.io/gorm"

// TurnRecorder persists one turn's telemetry. application/bot holds this
// as an interface so a disabled telemetry config can wire in a no-op.
type TurnRecorder interface {
	RecordTurn(rec TurnRecord) error
}

// GormTurnRecorder is the concrete gorm-backed TurnRecorder.
type GormTurnRecorder struct {
	db *gorm.DB
}

// NewGormTurnRecorder wraps an already-migrated *gorm.DB.
func NewGormTurnRecorder(db *gorm.DB) *GormTurnRecorder {
	return &GormTurnRecorder{db: db}
}

// RecordTurn inserts rec as a new row.
func (r *GormTurnRecorder) RecordTurn(rec TurnRecord) error {
	return r.db.Create(&rec).Error
}

// NoopTurnRecorder discards every record; used when telemetry is disabled
// so application/bot never needs a nil check.
type NoopTurnRecorder struct{}

// RecordTurn does nothing and never fails.
func (NoopTurnRecorder) RecordTurn(TurnRecord) error { return nil }

var (
	_ TurnRecorder = (*GormTurnRecorder)(nil)
	_ TurnRecorder = NoopTurnRecorder{}
)
