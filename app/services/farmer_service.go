package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"PacsApp/app/models"
	"PacsApp/app/websocket"
)

var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// Broadcaster pushes live events to connected counter displays.
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}

// FarmerService manages the farmer registry.
type FarmerService struct {
	db  *gorm.DB
	hub Broadcaster
	log *logrus.Logger
}

func NewFarmerService(db *gorm.DB, hub Broadcaster, log *logrus.Logger) *FarmerService {
	return &FarmerService{db: db, hub: hub, log: log}
}

// RegisterFarmerInput is the payload for registering a new farmer.
type RegisterFarmerInput struct {
	Aadhaar string `json:"aadhaar" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Village string `json:"village" binding:"required"`
	Contact string `json:"contact"`
}

// Register validates and stores a new farmer.
func (s *FarmerService) Register(input RegisterFarmerInput) (*models.Farmer, error) {
	aadhaar := strings.TrimSpace(input.Aadhaar)
	if !aadhaarPattern.MatchString(aadhaar) {
		return nil, ErrInvalidAadhaar
	}

	farmer := &models.Farmer{
		Aadhaar: aadhaar,
		Name:    strings.TrimSpace(input.Name),
		Village: strings.TrimSpace(input.Village),
		Contact: strings.TrimSpace(input.Contact),
	}

	if err := s.db.Create(farmer).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAadhaar
		}
		return nil, fmt.Errorf("registering farmer: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"farmer_id": farmer.ID,
		"village":   farmer.Village,
	}).Info("farmer registered")

	if s.hub != nil {
		s.hub.Broadcast(websocket.EventFarmerNew, farmer)
	}
	return farmer, nil
}

// GetByAadhaar looks up a farmer by Aadhaar number.
func (s *FarmerService) GetByAadhaar(aadhaar string) (*models.Farmer, error) {
	if !aadhaarPattern.MatchString(aadhaar) {
		return nil, ErrInvalidAadhaar
	}
	var farmer models.Farmer
	if err := s.db.Where("aadhaar = ?", aadhaar).First(&farmer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmerNotFound
		}
		return nil, fmt.Errorf("looking up farmer: %w", err)
	}
	return &farmer, nil
}

// List returns all farmers with purchase aggregates, most recently
// registered first.
func (s *FarmerService) List() ([]models.FarmerSummary, error) {
	// MAX() strips the column type, so sqlite hands the timestamp back
	// as text; scan it as a string and parse below.
	var rows []struct {
		models.Farmer
		TotalOrders int64
		TotalSpent  float64
		LastOrder   *string
	}
	err := s.db.Model(&models.Farmer{}).
		Select(`farmers.*,
			COUNT(orders.id) AS total_orders,
			COALESCE(SUM(orders.total_amount), 0) AS total_spent,
			MAX(orders.created_at) AS last_order`).
		Joins("LEFT JOIN orders ON orders.farmer_id = farmers.id").
		Group("farmers.id").
		Order("farmers.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing farmers: %w", err)
	}

	summaries := make([]models.FarmerSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.FarmerSummary{
			Farmer:        row.Farmer,
			TotalOrders:   row.TotalOrders,
			TotalSpent:    row.TotalSpent,
			LastOrderDate: parseDBTime(row.LastOrder),
		})
	}
	return summaries, nil
}

var dbTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
}

func parseDBTime(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range dbTimeLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t
		}
	}
	return nil
}

// isUniqueViolation detects a unique-constraint failure across the
// sqlite and postgres drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
