package handler

import (
	"net/http"
	"time"

	"timebank/internal/logger"
	"timebank/internal/service"
	"timebank/internal/timesheet"

	"github.com/gin-gonic/gin"
)

type ClockHandler struct{ clock *service.ClockService }

func NewClockHandler(clock *service.ClockService) *ClockHandler {
	return &ClockHandler{clock: clock}
}

// Next handles GET /api/clock/next — peek at the action a punch would take,
// so the client can label its button and disable it on a complete day.
func (h *ClockHandler) Next(c *gin.Context) {
	uid := c.GetInt("user_id")
	act, err := h.clock.Next(c.Request.Context(), uid, time.Now())
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":    act.State,
		"action":   act.State.Label(),
		"complete": act.State == timesheet.DayComplete,
	})
}

// Punch handles POST /api/clock — apply the next clock event at the server's
// current time. A complete day answers 200 with complete=true and mutates
// nothing.
func (h *ClockHandler) Punch(c *gin.Context) {
	uid := c.GetInt("user_id")
	res, err := h.clock.Punch(c.Request.Context(), uid, time.Now())
	if err != nil {
		logger.Error("clock.punch failed", "uid", uid, "err", err)
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	if res.Complete {
		c.JSON(http.StatusOK, gin.H{
			"state":    res.State,
			"complete": true,
			"message":  timesheet.ErrDayComplete.Error(),
		})
		return
	}

	logger.Info("clock.punch", "uid", uid, "state", res.State, "period", res.Period.ID)
	c.JSON(http.StatusOK, gin.H{
		"state":    res.State,
		"complete": false,
		"period":   res.Period,
	})
}
