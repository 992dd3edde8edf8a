package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"PacsApp/app/printer"
)

// The cooperative currently distributes a single product.
const defaultItemName = "Urea (45kg)"

// ReceiptService turns stored orders into printed receipts.
type ReceiptService struct {
	orders    *OrderService
	transport printer.Transport
	log       *logrus.Logger
	orgName   string
	loc       *time.Location
}

func NewReceiptService(orders *OrderService, transport printer.Transport, log *logrus.Logger, orgName string, loc *time.Location) *ReceiptService {
	return &ReceiptService{
		orders:    orders,
		transport: transport,
		log:       log,
		orgName:   orgName,
		loc:       loc,
	}
}

// Print renders the order's receipt in the given style and sends it to
// the printer. Returns the transport job id.
func (s *ReceiptService) Print(ctx context.Context, orderID uint, style printer.StyleID) (string, error) {
	data, err := s.buildReceipt(orderID)
	if err != nil {
		return "", err
	}

	raw := printer.Encode(printer.Render(*data, style))
	jobID, err := s.transport.Print(ctx, raw)
	if err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Error("receipt print failed")
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"style":    string(printer.Lookup(style).ID),
		"job_id":   jobID,
		"bytes":    len(raw),
	}).Info("receipt printed")
	return jobID, nil
}

// Preview renders the order's receipt as plain text for on-screen
// display. It never touches the printer.
func (s *ReceiptService) Preview(orderID uint, style printer.StyleID) (string, error) {
	data, err := s.buildReceipt(orderID)
	if err != nil {
		return "", err
	}
	return printer.Preview(*data, style), nil
}

// Styles lists the available receipt styles.
func (s *ReceiptService) Styles() []printer.Style {
	return printer.Catalog()
}

// Status reports printer reachability.
func (s *ReceiptService) Status(ctx context.Context) printer.Status {
	return s.transport.Status(ctx)
}

// buildReceipt assembles the layout input from a stored order.
func (s *ReceiptService) buildReceipt(orderID uint) (*printer.ReceiptData, error) {
	order, err := s.orders.GetWithFarmer(orderID)
	if err != nil {
		return nil, err
	}

	item := printer.LineItem{
		Description: defaultItemName,
		Quantity:    order.Quantity,
		UnitRate:    order.UnitPrice,
		LineTotal:   order.TotalAmount,
	}

	return &printer.ReceiptData{
		Organization:  s.orgName,
		TokenNumber:   strconv.FormatUint(uint64(order.ID), 10),
		FarmerName:    order.Farmer.Name,
		Village:       order.Farmer.Village,
		AadhaarMasked: printer.MaskAadhaar(order.Farmer.Aadhaar),
		Items:         []printer.LineItem{item},
		Subtotal:      order.TotalAmount,
		Timestamp:     order.CreatedAt.In(s.loc),
	}, nil
}

// TestPage prints a diagnostic page: alignment markers, the full
// column ruler and a QR code, enough to verify cabling, cut and
// raster support in one shot.
func (s *ReceiptService) TestPage(ctx context.Context) (string, error) {
	b := printer.NewBuilder()
	b.Append(printer.Initialize{})

	b.Align(printer.AlignCenter)
	b.Size(2, 2)
	b.BoldLine(s.orgName)
	b.Size(1, 1)
	b.Line("PRINTER TEST PAGE")
	b.Separator('=')
	b.Blank()

	b.Align(printer.AlignLeft)
	b.Line("0123456789" + strings.Repeat("X", printer.ReceiptWidth-10))
	b.Align(printer.AlignCenter)
	b.Line("<< centered >>")
	b.Align(printer.AlignRight)
	b.Line("right aligned >>")
	b.Blank()

	code, err := qrcode.New("PACS printer test "+time.Now().In(s.loc).Format("02-01-2006 15:04"), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("building test qr code: %w", err)
	}
	b.Align(printer.AlignCenter)
	b.Append(printer.RasterFromBitmap(code.Bitmap(), 2))
	b.Blank()

	b.Line("If you can scan the code above,")
	b.Line("the printer is working correctly.")
	b.Align(printer.AlignLeft)
	b.Append(printer.Feed{Lines: 3}, printer.CutPaper{})

	jobID, err := s.transport.Print(ctx, printer.Encode(b.Ops()))
	if err != nil {
		s.log.WithError(err).Error("test page print failed")
		return "", err
	}
	s.log.WithField("job_id", jobID).Info("test page printed")
	return jobID, nil
}
