package handler

import (
	"fmt"
	"net/http"

	"timebank/internal/logger"
	"timebank/internal/service"
	"timebank/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ExportHandler struct {
	periods *service.PeriodService
	bank    *service.BankService
}

func NewExportHandler(periods *service.PeriodService, bank *service.BankService) *ExportHandler {
	return &ExportHandler{periods: periods, bank: bank}
}

const exportSheet = "History"

// Export handles GET /api/export — the full history plus the bank summary
// as an xlsx download, one row per period.
func (h *ExportHandler) Export(c *gin.Context) {
	uid := c.GetInt("user_id")
	ctx := c.Request.Context()

	days, err := h.periods.History(ctx, uid)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	snap, err := h.bank.Snapshot(ctx, uid)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	headers := []string{"Date", "Slot", "Clock In", "Clock Out", "Minutes"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, name)
	}

	row := 2
	for _, day := range days {
		for i, p := range day.Periods {
			f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), day.Date)
			f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), timesheet.SlotOf(i).String())
			f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), p.ClockIn)
			if p.ClockOut != nil {
				f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), *p.ClockOut)
			}
			if p.DurationMinutes != nil {
				f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), *p.DurationMinutes)
			}
			row++
		}
	}

	row++
	summary := []struct {
		label string
		value int
	}{
		{"Days worked", snap.DaysWorked},
		{"Worked minutes", snap.TotalWorkedMinutes},
		{"Expected minutes", snap.TotalExpectedMinutes},
		{"Bank balance", snap.BankMinutes},
	}
	for _, s := range summary {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), s.label)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), s.value)
		row++
	}

	c.Header("Content-Disposition", `attachment; filename="timebank.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("export.write failed", "uid", uid, "err", err)
		return
	}
	logger.Info("export.ok", "uid", uid, "days", len(days))
}
