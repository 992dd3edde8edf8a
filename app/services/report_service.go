package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"PacsApp/app/models"
	"PacsApp/app/printer"
)

// ReportService aggregates daily sales and prints the end-of-day
// summary ticket.
type ReportService struct {
	db        *gorm.DB
	transport printer.Transport
	log       *logrus.Logger
	orgName   string
	loc       *time.Location

	now func() time.Time
}

func NewReportService(db *gorm.DB, transport printer.Transport, log *logrus.Logger, orgName string, loc *time.Location) *ReportService {
	return &ReportService{
		db:        db,
		transport: transport,
		log:       log,
		orgName:   orgName,
		loc:       loc,
		now:       time.Now,
	}
}

// Daily aggregates one civil day of orders. A zero date means today.
func (s *ReportService) Daily(date time.Time) (*models.DailyReport, error) {
	if date.IsZero() {
		date = s.now()
	}
	dayStart, dayEnd := civilDayBounds(date, s.loc)

	var row struct {
		TotalOrders  int64
		TotalBags    int64
		TotalRevenue decimal.Decimal
	}
	err := s.db.Model(&models.Order{}).
		Select(`COUNT(id) AS total_orders,
			COALESCE(SUM(quantity), 0) AS total_bags,
			COALESCE(SUM(total_amount), 0) AS total_revenue`).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating daily report: %w", err)
	}

	report := &models.DailyReport{
		Date:         date.In(s.loc),
		TotalOrders:  row.TotalOrders,
		TotalBags:    row.TotalBags,
		TotalRevenue: row.TotalRevenue,
	}
	if row.TotalOrders > 0 {
		orders := decimal.NewFromInt(row.TotalOrders)
		report.AvgPerOrder = row.TotalRevenue.DivRound(orders, 2)
		report.AvgBags = decimal.NewFromInt(row.TotalBags).DivRound(orders, 1)
	}
	return report, nil
}

// PrintDaily prints the end-of-day summary ticket for the given date.
func (s *ReportService) PrintDaily(ctx context.Context, date time.Time) (string, error) {
	report, err := s.Daily(date)
	if err != nil {
		return "", err
	}

	summary := printer.SummaryData{
		Organization: s.orgName,
		Date:         report.Date,
		PrintedAt:    s.now().In(s.loc),
		TotalOrders:  report.TotalOrders,
		TotalBags:    report.TotalBags,
		TotalRevenue: report.TotalRevenue,
		AvgPerOrder:  report.AvgPerOrder,
		AvgBags:      report.AvgBags,
	}

	jobID, err := s.transport.Print(ctx, printer.Encode(printer.RenderSummary(summary)))
	if err != nil {
		s.log.WithError(err).Error("daily summary print failed")
		return "", err
	}
	s.log.WithFields(logrus.Fields{
		"date":   report.Date.Format("02-01-2006"),
		"orders": report.TotalOrders,
		"job_id": jobID,
	}).Info("daily summary printed")
	return jobID, nil
}
