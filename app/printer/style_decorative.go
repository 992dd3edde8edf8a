package printer

// decorativeLayout reproduces the boxed receipt the cooperative has
// been handing out: '+=...=+' borders and a double-size token number.
func decorativeLayout(b *Builder, d ReceiptData) {
	b.Align(AlignCenter)
	b.Rule("+", '=')
	b.Size(2, 1)
	b.Bold(true)
	b.Line(d.Organization)
	b.Size(1, 1)
	b.Bold(false)
	b.Line("FERTILIZER RECEIPT")
	b.Rule("+", '=')

	b.Align(AlignLeft)
	b.Bold(true)
	b.Size(1, 2)
	b.Line("Token No: " + d.TokenNumber)
	b.Size(1, 1)
	b.Bold(false)
	b.Line("Farmer: " + d.FarmerName)
	if d.Village != "" {
		b.Line("Village: " + d.Village)
	}
	if d.AadhaarMasked != "" {
		b.Line("Aadhaar: " + d.AadhaarMasked)
	}
	b.Rule("+", '=')

	b.ItemHeader()
	b.Rule("+", '-')
	for _, it := range d.Items {
		b.ItemRow(it)
	}
	b.Rule("+", '-')
	b.Bold(true)
	b.KeyValue("TOTAL", "Rs. "+d.GrandTotal().StringFixed(2))
	b.Bold(false)
	b.Rule("+", '=')

	b.KeyValue("Date: "+d.DateString(), "Time: "+d.TimeString())
	b.Align(AlignCenter)
	b.Line("* Thank you for your cooperation! *")
	b.Rule("+", '=')
}
