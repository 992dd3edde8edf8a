package printer

// elegantLayout centers every block and underlines the headings, the
// way the daily summary ticket does.
func elegantLayout(b *Builder, d ReceiptData) {
	b.Align(AlignCenter)
	b.Separator('~')
	b.Size(2, 2)
	b.Bold(true)
	b.Line(d.Organization)
	b.Size(1, 1)
	b.Bold(false)
	b.Underline(true)
	b.Line("Fertilizer Receipt")
	b.Underline(false)
	b.Separator('~')

	b.Bold(true)
	b.Line("Token No. " + d.TokenNumber)
	b.Bold(false)
	b.Line(d.FarmerName)
	if d.Village != "" {
		b.Line("of " + d.Village)
	}
	if d.AadhaarMasked != "" {
		b.Line(d.AadhaarMasked)
	}
	b.Blank()

	b.Align(AlignLeft)
	b.ItemHeader()
	b.Separator('.')
	for _, it := range d.Items {
		b.ItemRow(it)
	}
	b.Separator('.')
	b.Bold(true)
	b.KeyValue("Grand Total", "Rs. "+d.GrandTotal().StringFixed(2))
	b.Bold(false)
	b.Blank()

	b.Align(AlignCenter)
	b.Line(d.DateString() + "  " + d.TimeString())
	b.Line("~ Thank you for your cooperation ~")
	b.Separator('~')
}
