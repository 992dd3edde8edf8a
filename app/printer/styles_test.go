package printer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() ReceiptData {
	return ReceiptData{
		Organization:  "PACS-AIZA",
		TokenNumber:   "142",
		FarmerName:    "Ramesh Kumar",
		Village:       "Aiza",
		AadhaarMasked: MaskAadhaar("123456789012"),
		Items: []LineItem{
			{
				Description: "Urea (45kg)",
				Quantity:    2,
				UnitRate:    decimal.NewFromFloat(268.00),
				LineTotal:   decimal.NewFromFloat(536.00),
			},
		},
		Subtotal:  decimal.NewFromFloat(536.00),
		Timestamp: time.Date(2024, 3, 10, 11, 35, 0, 0, time.FixedZone("IST", int(5.5*3600))),
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	d := sampleReceipt()
	for _, s := range Catalog() {
		first := Encode(Render(d, s.ID))
		second := Encode(Render(d, s.ID))
		assert.Equal(t, first, second, "style %s", s.ID)
	}
}

func TestEveryStyleSurfacesRequiredFields(t *testing.T) {
	d := sampleReceipt()
	for _, s := range Catalog() {
		t.Run(string(s.ID), func(t *testing.T) {
			text := Preview(d, s.ID)
			assert.Contains(t, text, "PACS-AIZA")
			assert.Contains(t, text, "142")
			assert.Contains(t, text, "Ramesh Kumar")
			assert.Contains(t, text, "Urea (45kg)")
			assert.Contains(t, text, "536.00")
			assert.Contains(t, text, "10-03-2024")
			assert.Contains(t, text, "11:35 AM")
		})
	}
}

func TestOptionalFieldsAreOmittedWhenEmpty(t *testing.T) {
	d := sampleReceipt()
	d.Village = ""
	d.AadhaarMasked = ""
	for _, s := range Catalog() {
		text := Preview(d, s.ID)
		assert.NotContains(t, text, "Village", "style %s", s.ID)
		assert.NotContains(t, text, "Aadhaar", "style %s", s.ID)
	}
}

func TestItemRowsShareColumnOffsets(t *testing.T) {
	short := LineItem{
		Description: "DAP",
		Quantity:    1,
		UnitRate:    decimal.NewFromFloat(1350.00),
		LineTotal:   decimal.NewFromFloat(1350.00),
	}
	long := LineItem{
		Description: strings.Repeat("Very Long Fertilizer Name ", 2),
		Quantity:    3,
		UnitRate:    decimal.NewFromFloat(268.00),
		LineTotal:   decimal.NewFromFloat(804.00),
	}

	d := sampleReceipt()
	d.Items = []LineItem{short, long}

	for _, s := range Catalog() {
		text := Preview(d, s.ID)
		var rowWidths []int
		for _, line := range strings.Split(text, "\n") {
			if strings.Contains(line, "x 1350.00") || strings.Contains(line, "x 268.00") {
				rowWidths = append(rowWidths, len(line))
			}
		}
		require.Len(t, rowWidths, 2, "style %s", s.ID)
		assert.Equal(t, rowWidths[0], rowWidths[1], "style %s", s.ID)
		assert.Equal(t, itemRowWidth, rowWidths[0], "style %s", s.ID)
	}
}

func TestLongDescriptionIsTruncatedNotWrapped(t *testing.T) {
	d := sampleReceipt()
	d.Items[0].Description = strings.Repeat("X", 40)

	text := Preview(d, StyleClassic)
	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), ReceiptWidth)
	}
}

func TestGrandTotalIsRecomputedFromParts(t *testing.T) {
	d := sampleReceipt()
	d.Tax = decimal.NewFromFloat(26.80)

	text := Preview(d, StyleClassic)
	assert.Contains(t, text, "562.80")
}

func TestUnknownStyleFallsBackToDefault(t *testing.T) {
	d := sampleReceipt()
	unknown := Encode(Render(d, StyleID("vaporwave")))
	classic := Encode(Render(d, DefaultStyle))
	assert.Equal(t, classic, unknown)
}

func TestRenderBeginsWithInitAndEndsWithCut(t *testing.T) {
	ops := Render(sampleReceipt(), StyleDecorative)
	require.NotEmpty(t, ops)
	assert.IsType(t, Initialize{}, ops[0])
	assert.IsType(t, CutPaper{}, ops[len(ops)-1])
}

func TestDecorativeStyleScenario(t *testing.T) {
	text := Preview(sampleReceipt(), StyleDecorative)

	assert.Contains(t, text, "Token No: 142")
	assert.Contains(t, text, "FERTILIZER RECEIPT")
	assert.Contains(t, text, "+"+strings.Repeat("=", ReceiptWidth-2)+"+")
	assert.Contains(t, text, "Rs. 536.00")
	assert.Contains(t, text, "* Thank you for your cooperation! *")
}

func TestMaskAadhaar(t *testing.T) {
	assert.Equal(t, "XXXXXXXX9012", MaskAadhaar("123456789012"))
	assert.Equal(t, "1234", MaskAadhaar("1234"))
	assert.Equal(t, "", MaskAadhaar(""))
}

func TestCatalogIsStable(t *testing.T) {
	ids := []StyleID{}
	for _, s := range Catalog() {
		ids = append(ids, s.ID)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Description)
	}
	assert.Equal(t, []StyleID{StyleClassic, StyleDecorative, StyleModern, StyleElegant}, ids)
}
