package store

import (
	"context"
	"errors"
	"fmt"

	"timebank/internal/model"

	"gorm.io/gorm"
)

type ConfigStore struct{ db *gorm.DB }

func NewConfigStore(db *gorm.DB) *ConfigStore { return &ConfigStore{db: db} }

// Load returns the user's work config, falling back to the defaults when
// none was ever saved.
func (s *ConfigStore) Load(ctx context.Context, userID int) (model.WorkConfig, error) {
	var cfg model.WorkConfig
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultWorkConfig(userID), nil
	}
	if err != nil {
		return model.WorkConfig{}, fmt.Errorf("query config: %w", err)
	}
	return cfg, nil
}

// Upsert saves the config, replacing any previous row for the user.
func (s *ConfigStore) Upsert(ctx context.Context, cfg model.WorkConfig) error {
	var existing model.WorkConfig
	err := s.db.WithContext(ctx).Where("user_id = ?", cfg.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return fmt.Errorf("insert config: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query config: %w", err)
	}
	err = s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"daily_hours":  cfg.DailyHours,
		"weekly_hours": cfg.WeeklyHours,
	}).Error
	if err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	return nil
}
