package handler

import (
	"net/http"

	"timebank/internal/logger"
	"timebank/internal/model"
	"timebank/internal/store"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct{ configs *store.ConfigStore }

func NewConfigHandler(configs *store.ConfigStore) *ConfigHandler {
	return &ConfigHandler{configs: configs}
}

// Get handles GET /api/config — the saved schedule, or the defaults when
// none exists yet.
func (h *ConfigHandler) Get(c *gin.Context) {
	uid := c.GetInt("user_id")
	cfg, err := h.configs.Load(c.Request.Context(), uid)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Put handles PUT /api/config — upsert the schedule. Past periods are
// rejudged against the new values on the next bank read; nothing is
// recomputed here.
func (h *ConfigHandler) Put(c *gin.Context) {
	var req model.WorkConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetInt("user_id")
	cfg := model.WorkConfig{UserID: uid, DailyHours: req.DailyHours, WeeklyHours: req.WeeklyHours}
	if err := h.configs.Upsert(c.Request.Context(), cfg); err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.Info("config.saved", "uid", uid, "daily_hours", cfg.DailyHours, "weekly_hours", cfg.WeeklyHours)
	c.JSON(http.StatusOK, cfg)
}
