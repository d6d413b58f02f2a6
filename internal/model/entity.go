package model

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

// Period is one contiguous clock-in/clock-out interval on a calendar day,
// the only persisted attendance entity. Date is the dd/mm/yyyy grouping key,
// not a date column: identical string means same day. A nil ClockOut means
// the period is still open; DurationMinutes is present iff ClockOut is.
type Period struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          int       `gorm:"index:idx_period_user_date" json:"user_id"`
	Date            string    `gorm:"size:10;index:idx_period_user_date" json:"date"`
	ClockIn         string    `gorm:"size:5" json:"clock_in"`
	ClockOut        *string   `gorm:"size:5" json:"clock_out,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Open reports whether the period is still waiting for its clock-out.
func (p *Period) Open() bool { return p.ClockOut == nil }

// WorkConfig is the per-user work schedule, one row per user, upserted and
// never historized. Changing it rejudges all past periods on the next bank
// read.
type WorkConfig struct {
	UserID      int     `gorm:"primaryKey" json:"-"`
	DailyHours  float64 `json:"daily_hours"`
	WeeklyHours float64 `json:"weekly_hours"`
}

// DefaultWorkConfig is the schedule used before a user saves one.
func DefaultWorkConfig(userID int) WorkConfig {
	return WorkConfig{UserID: userID, DailyHours: 8, WeeklyHours: 40}
}

func (User) TableName() string       { return "users" }
func (Period) TableName() string     { return "periods" }
func (WorkConfig) TableName() string { return "work_configs" }
