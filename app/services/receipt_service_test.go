package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PacsApp/app/printer"
)

// fakeTransport records jobs or fails every print, per test.
type fakeTransport struct {
	jobs [][]byte
	err  error
}

func (f *fakeTransport) Print(_ context.Context, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.jobs = append(f.jobs, data)
	return "job-1", nil
}

func (f *fakeTransport) Status(_ context.Context) printer.Status {
	if f.err != nil {
		return printer.Status{Ready: false, Detail: f.err.Error()}
	}
	return printer.Status{Ready: true, Detail: "ok"}
}

func newReceiptFixture(t *testing.T, transport printer.Transport) (*ReceiptService, uint) {
	t.Helper()
	db := testDB(t)
	seedFarmer(t, db, "123456789012")
	orders := NewOrderService(db, nil, testLogger(), 5, testLocation())
	order, err := orders.Create(CreateOrderInput{Aadhaar: "123456789012"})
	require.NoError(t, err)

	svc := NewReceiptService(orders, transport, testLogger(), "PACS-AIZA", testLocation())
	return svc, order.ID
}

func TestPrintReceiptSendsEncodedJob(t *testing.T) {
	transport := &fakeTransport{}
	svc, orderID := newReceiptFixture(t, transport)

	jobID, err := svc.Print(context.Background(), orderID, printer.StyleDecorative)
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)

	require.Len(t, transport.jobs, 1)
	job := transport.jobs[0]
	assert.Contains(t, string(job), "PACS-AIZA")
	assert.Contains(t, string(job), "Ramesh Kumar")
	assert.Contains(t, string(job), "536.00")
}

func TestPrintReceiptUnknownOrder(t *testing.T) {
	svc, _ := newReceiptFixture(t, &fakeTransport{})

	_, err := svc.Print(context.Background(), 9999, printer.StyleClassic)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPreviewWorksWhilePrinterIsDown(t *testing.T) {
	transport := &fakeTransport{err: printer.ErrDeviceUnavailable}
	svc, orderID := newReceiptFixture(t, transport)

	_, err := svc.Print(context.Background(), orderID, printer.StyleClassic)
	require.ErrorIs(t, err, printer.ErrDeviceUnavailable)

	text, err := svc.Preview(orderID, printer.StyleClassic)
	require.NoError(t, err)
	assert.Contains(t, text, "Ramesh Kumar")
	assert.Contains(t, text, "536.00")
}

func TestPreviewMasksAadhaar(t *testing.T) {
	svc, orderID := newReceiptFixture(t, &fakeTransport{})

	text, err := svc.Preview(orderID, printer.StyleClassic)
	require.NoError(t, err)
	assert.Contains(t, text, "XXXXXXXX9012")
	assert.NotContains(t, text, "123456789012")
}

func TestReprintProducesIdenticalJob(t *testing.T) {
	transport := &fakeTransport{}
	svc, orderID := newReceiptFixture(t, transport)

	_, err := svc.Print(context.Background(), orderID, printer.StyleElegant)
	require.NoError(t, err)
	_, err = svc.Print(context.Background(), orderID, printer.StyleElegant)
	require.NoError(t, err)

	require.Len(t, transport.jobs, 2)
	assert.Equal(t, transport.jobs[0], transport.jobs[1])
}

func TestStylesAndStatusPassThrough(t *testing.T) {
	svc, _ := newReceiptFixture(t, &fakeTransport{})

	styles := svc.Styles()
	assert.Len(t, styles, 4)

	status := svc.Status(context.Background())
	assert.True(t, status.Ready)
}

func TestTestPagePrints(t *testing.T) {
	transport := &fakeTransport{}
	svc, _ := newReceiptFixture(t, transport)

	jobID, err := svc.TestPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)

	require.Len(t, transport.jobs, 1)
	assert.Contains(t, string(transport.jobs[0]), "PRINTER TEST PAGE")
}

func TestTestPageSurfacesTransportErrors(t *testing.T) {
	transport := &fakeTransport{err: errors.New("boom")}
	svc, _ := newReceiptFixture(t, transport)

	_, err := svc.TestPage(context.Background())
	assert.Error(t, err)
}
