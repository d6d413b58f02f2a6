package model

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// DayEntryRequest is the manual daily entry: an ISO calendar date plus up to
// four HH:MM times. Entry is the only mandatory time.
type DayEntryRequest struct {
	Date     string `json:"date" binding:"required"`
	Entry    string `json:"entry"`
	LunchOut string `json:"lunch_out"`
	LunchIn  string `json:"lunch_in"`
	Exit     string `json:"exit"`
}

// EditPeriodRequest replaces both boundaries of a stored period. An empty
// clock-out reopens the period.
type EditPeriodRequest struct {
	ClockIn  string `json:"clock_in" binding:"required"`
	ClockOut string `json:"clock_out"`
}

type WorkConfigRequest struct {
	DailyHours  float64 `json:"daily_hours" binding:"required,gt=0"`
	WeeklyHours float64 `json:"weekly_hours" binding:"required,gt=0"`
}

// DayGroup is one history entry: a day with its periods and rollup.
type DayGroup struct {
	Date         string   `json:"date"`
	TotalMinutes int      `json:"total_minutes"`
	InProgress   bool     `json:"in_progress"`
	Periods      []Period `json:"periods"`
}
