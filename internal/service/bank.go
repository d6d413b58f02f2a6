package service

import (
	"context"

	"timebank/internal/timesheet"
)

// BankService projects the stored periods and current config into the hour
// bank. Pure read; nothing is cached between calls.
type BankService struct {
	periods PeriodRepo
	configs ConfigRepo
}

func NewBankService(periods PeriodRepo, configs ConfigRepo) *BankService {
	return &BankService{periods: periods, configs: configs}
}

func (s *BankService) Snapshot(ctx context.Context, userID int) (timesheet.BankSnapshot, error) {
	ps, err := s.periods.ListByUser(ctx, userID)
	if err != nil {
		return timesheet.BankSnapshot{}, err
	}
	cfg, err := s.configs.Load(ctx, userID)
	if err != nil {
		return timesheet.BankSnapshot{}, err
	}
	return timesheet.ComputeBank(ps, cfg), nil
}
