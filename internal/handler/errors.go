package handler

import (
	"errors"
	"net/http"

	"timebank/internal/timesheet"
	"timebank/internal/timeutil"

	"gorm.io/gorm"
)

// httpStatus maps domain errors onto response codes: caller mistakes are
// 400, missing records 404, everything else (store failures included) 500.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, timeutil.ErrMalformedTime),
		errors.Is(err, timesheet.ErrMissingClockIn),
		errors.Is(err, timesheet.ErrInvalidOrdering):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
