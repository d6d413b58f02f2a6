package handler

import (
	"net/http"
	"time"

	"timebank/internal/logger"
	"timebank/internal/model"
	"timebank/internal/service"
	"timebank/internal/timesheet"
	"timebank/internal/timeutil"

	"github.com/gin-gonic/gin"
)

type PeriodHandler struct{ svc *service.PeriodService }

func NewPeriodHandler(svc *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{svc: svc}
}

// SaveDay handles POST /api/periods/day — decompose a manually entered day
// into stored periods. The date arrives ISO (from a date input) and is
// stored as the dd/mm/yyyy day key.
func (h *PeriodHandler) SaveDay(c *gin.Context) {
	var req model.DayEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	uid := c.GetInt("user_id")
	periods, err := h.svc.SaveDay(c.Request.Context(), uid, timesheet.DayEntry{
		Date:     timeutil.DateKey(day),
		Entry:    req.Entry,
		LunchOut: req.LunchOut,
		LunchIn:  req.LunchIn,
		Exit:     req.Exit,
	})
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.Info("periods.day saved", "uid", uid, "date", req.Date, "periods", len(periods))
	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

// List handles GET /api/periods — full history grouped by day, newest first.
func (h *PeriodHandler) List(c *gin.Context) {
	uid := c.GetInt("user_id")
	days, err := h.svc.History(c.Request.Context(), uid)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	groups := make([]model.DayGroup, 0, len(days))
	for _, d := range days {
		groups = append(groups, model.DayGroup{
			Date:         d.Date,
			TotalMinutes: d.TotalMinutes(),
			InProgress:   d.InProgress(),
			Periods:      d.Periods,
		})
	}
	c.JSON(http.StatusOK, groups)
}

// Update handles PUT /api/periods/:id — the full-record edit, the one entry
// path that rejects a clock-out at or before the clock-in.
func (h *PeriodHandler) Update(c *gin.Context) {
	var req model.EditPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetInt("user_id")
	p, err := h.svc.Edit(c.Request.Context(), uid, c.Param("id"), req.ClockIn, req.ClockOut)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.Info("periods.edit", "uid", uid, "period", p.ID)
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/periods/:id — immediate and irreversible.
func (h *PeriodHandler) Delete(c *gin.Context) {
	uid := c.GetInt("user_id")
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), uid, id); err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	logger.Info("periods.delete", "uid", uid, "period", id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
