package models

import "time"

// ModelParams is an append-only audit row of the hyperparameters used for a
// retrain action. Nothing reads it back; it exists for traceability.
type ModelParams struct {
	ID              uint `gorm:"primaryKey"`
	NEstimators     int  `gorm:"column:n_estimators"`
	MaxDepth        int
	MinSamplesSplit int
	UpdatedAt       time.Time
}
