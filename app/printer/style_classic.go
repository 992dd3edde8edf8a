package printer

// classicLayout is the plain layout: '=' separators, no box drawing.
func classicLayout(b *Builder, d ReceiptData) {
	b.Align(AlignCenter)
	b.Separator('=')
	b.Size(2, 1)
	b.Bold(true)
	b.Line(d.Organization)
	b.Size(1, 1)
	b.Bold(false)
	b.Line("FERTILIZER RECEIPT")
	b.Separator('=')

	b.Align(AlignLeft)
	b.Bold(true)
	b.Line("Token No: " + d.TokenNumber)
	b.Bold(false)
	b.Line("Farmer  : " + d.FarmerName)
	if d.Village != "" {
		b.Line("Village : " + d.Village)
	}
	if d.AadhaarMasked != "" {
		b.Line("Aadhaar : " + d.AadhaarMasked)
	}
	b.Separator('=')

	b.ItemHeader()
	b.Separator('-')
	for _, it := range d.Items {
		b.ItemRow(it)
	}
	b.Separator('-')
	b.Bold(true)
	b.KeyValue("TOTAL", "Rs. "+d.GrandTotal().StringFixed(2))
	b.Bold(false)
	b.Separator('=')

	b.KeyValue("Date: "+d.DateString(), "Time: "+d.TimeString())
	b.Align(AlignCenter)
	b.Line("Thank you! Visit again.")
	b.Separator('=')
}
