package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"PacsApp/app/models"
	"PacsApp/app/websocket"
)

// Distribution defaults applied when the counter leaves fields blank.
var (
	defaultQuantity  = 2
	defaultUnitPrice = decimal.NewFromFloat(268.00)
)

// OrderService records fertilizer sales and enforces the per-farmer
// daily bag quota.
type OrderService struct {
	db         *gorm.DB
	hub        Broadcaster
	log        *logrus.Logger
	dailyQuota int
	loc        *time.Location

	// now is replaceable in tests to pin the civil day.
	now func() time.Time
}

func NewOrderService(db *gorm.DB, hub Broadcaster, log *logrus.Logger, dailyQuota int, loc *time.Location) *OrderService {
	return &OrderService{
		db:         db,
		hub:        hub,
		log:        log,
		dailyQuota: dailyQuota,
		loc:        loc,
		now:        time.Now,
	}
}

// CreateOrderInput is the payload for recording a sale. Quantity and
// unit price fall back to the distribution defaults when omitted.
type CreateOrderInput struct {
	Aadhaar   string           `json:"aadhaar" binding:"required"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// Create records a sale for the farmer identified by Aadhaar.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if !aadhaarPattern.MatchString(input.Aadhaar) {
		return nil, ErrInvalidAadhaar
	}

	var farmer models.Farmer
	if err := s.db.Where("aadhaar = ?", input.Aadhaar).First(&farmer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmerNotFound
		}
		return nil, fmt.Errorf("looking up farmer: %w", err)
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = defaultQuantity
	}
	unitPrice := defaultUnitPrice
	if input.UnitPrice != nil && input.UnitPrice.IsPositive() {
		unitPrice = *input.UnitPrice
	}

	if err := s.checkQuota(farmer.ID, quantity); err != nil {
		return nil, err
	}

	order := &models.Order{
		FarmerID:    farmer.ID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		// Stamped from the service clock so the quota window and the
		// stored timestamp can never disagree.
		CreatedAt: s.now().UTC(),
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	order.Farmer = farmer

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"farmer":   farmer.Name,
		"quantity": quantity,
		"total":    order.TotalAmount.StringFixed(2),
	}).Info("order created")

	if s.hub != nil {
		s.hub.Broadcast(websocket.EventOrderNew, order)
	}
	return order, nil
}

// checkQuota rejects a sale that would push the farmer past the daily
// bag quota. The civil day is computed in the organization timezone.
func (s *OrderService) checkQuota(farmerID uint, quantity int) error {
	dayStart, dayEnd := s.dayBounds(s.now())

	var bagsToday int64
	err := s.db.Model(&models.Order{}).
		Where("farmer_id = ? AND created_at >= ? AND created_at < ?", farmerID, dayStart, dayEnd).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&bagsToday).Error
	if err != nil {
		return fmt.Errorf("checking quota: %w", err)
	}

	if bagsToday+int64(quantity) > int64(s.dailyQuota) {
		s.log.WithFields(logrus.Fields{
			"farmer_id":  farmerID,
			"bags_today": bagsToday,
			"requested":  quantity,
			"quota":      s.dailyQuota,
		}).Warn("daily quota exceeded")
		return fmt.Errorf("%w: %d of %d bags already purchased today", ErrQuotaExceeded, bagsToday, s.dailyQuota)
	}
	return nil
}

func (s *OrderService) dayBounds(t time.Time) (time.Time, time.Time) {
	return civilDayBounds(t, s.loc)
}

// civilDayBounds returns the UTC instants bounding the civil day
// containing t in the given timezone.
func civilDayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// GetWithFarmer fetches one order with its farmer preloaded.
func (s *OrderService) GetWithFarmer(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Farmer").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("looking up order: %w", err)
	}
	return &order, nil
}

// ListByDate returns all orders of one civil day, newest first. A zero
// date means today.
func (s *OrderService) ListByDate(date time.Time) ([]models.Order, error) {
	if date.IsZero() {
		date = s.now()
	}
	dayStart, dayEnd := s.dayBounds(date)

	var orders []models.Order
	err := s.db.Preload("Farmer").
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

// HistoryByAadhaar returns a farmer's full purchase history, newest
// first.
func (s *OrderService) HistoryByAadhaar(aadhaar string) ([]models.Order, error) {
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

	var orders []models.Order
	err := s.db.Where("farmer_id = ?", farmer.ID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("listing order history: %w", err)
	}
	return orders, nil
}
