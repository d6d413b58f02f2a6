package service

import (
	"context"

	"timebank/internal/model"
)

// PeriodRepo is what the services need from the period store. The GORM
// store satisfies it; tests swap in an in-memory fake.
type PeriodRepo interface {
	ListByUser(ctx context.Context, userID int) ([]model.Period, error)
	ListByDay(ctx context.Context, userID int, date string) ([]model.Period, error)
	Get(ctx context.Context, userID int, id string) (model.Period, error)
	Insert(ctx context.Context, p *model.Period) error
	SetClockOut(ctx context.Context, id, clockOut string, minutes int) error
	Update(ctx context.Context, p *model.Period) error
	Delete(ctx context.Context, userID int, id string) error
}

// ConfigRepo loads and upserts the per-user work schedule.
type ConfigRepo interface {
	Load(ctx context.Context, userID int) (model.WorkConfig, error)
	Upsert(ctx context.Context, cfg model.WorkConfig) error
}
