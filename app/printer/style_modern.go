package printer

// modernLayout keeps decoration to thin rules and uses the double-width
// toggle for the token line.
func modernLayout(b *Builder, d ReceiptData) {
	b.Align(AlignCenter)
	b.Bold(true)
	b.Line(d.Organization)
	b.Bold(false)
	b.Line("fertilizer receipt")
	b.Separator('-')

	b.Align(AlignLeft)
	b.Append(SetAttribute{Attr: AttrDoubleWidth, On: true})
	b.Line("TOKEN " + d.TokenNumber)
	b.Append(SetAttribute{Attr: AttrDoubleWidth, On: false})
	b.Line(d.FarmerName)
	if d.Village != "" {
		b.Line(d.Village)
	}
	if d.AadhaarMasked != "" {
		b.Line(d.AadhaarMasked)
	}
	b.Separator('-')

	b.ItemHeader()
	for _, it := range d.Items {
		b.ItemRow(it)
	}
	b.Separator('-')
	b.Bold(true)
	b.KeyValue("TOTAL", d.GrandTotal().StringFixed(2))
	b.Bold(false)

	b.KeyValue(d.DateString(), d.TimeString())
	b.Separator('-')
	b.Align(AlignCenter)
	b.Line("thank you")
}
