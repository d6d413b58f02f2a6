// Package store is the persistence boundary: GORM-backed access to periods
// and work configs, keyed by user. The domain packages never see it; they
// work on snapshots the services load from here.
package store

import (
	"context"
	"fmt"

	"timebank/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PeriodStore struct{ db *gorm.DB }

func NewPeriodStore(db *gorm.DB) *PeriodStore { return &PeriodStore{db: db} }

// ListByUser loads every period of a user, newest insert first. Callers
// re-sort by day and clock-in as needed.
func (s *PeriodStore) ListByUser(ctx context.Context, userID int) ([]model.Period, error) {
	var ps []model.Period
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&ps).Error
	if err != nil {
		return nil, fmt.Errorf("query periods: %w", err)
	}
	return ps, nil
}

// ListByDay loads a user's periods for one day key.
func (s *PeriodStore) ListByDay(ctx context.Context, userID int, date string) ([]model.Period, error) {
	var ps []model.Period
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&ps).Error
	if err != nil {
		return nil, fmt.Errorf("query day periods: %w", err)
	}
	return ps, nil
}

func (s *PeriodStore) Get(ctx context.Context, userID int, id string) (model.Period, error) {
	var p model.Period
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return model.Period{}, fmt.Errorf("load period: %w", err)
	}
	return p, nil
}

// Insert stores a new period, assigning its id when the caller left it
// empty.
func (s *PeriodStore) Insert(ctx context.Context, p *model.Period) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

// SetClockOut closes an open period: the single-mutation update of the quick
// action.
func (s *PeriodStore) SetClockOut(ctx context.Context, id, clockOut string, minutes int) error {
	err := s.db.WithContext(ctx).Model(&model.Period{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"clock_out":        clockOut,
			"duration_minutes": minutes,
		}).Error
	if err != nil {
		return fmt.Errorf("close period: %w", err)
	}
	return nil
}

// Update rewrites the full record, including nil clock-out and duration when
// an edit reopens the period.
func (s *PeriodStore) Update(ctx context.Context, p *model.Period) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update period: %w", err)
	}
	return nil
}

// Delete removes a period immediately. Deleting someone else's period, or a
// missing one, reports gorm.ErrRecordNotFound.
func (s *PeriodStore) Delete(ctx context.Context, userID int, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Period{})
	if res.Error != nil {
		return fmt.Errorf("delete period: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete period: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
