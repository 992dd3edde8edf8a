package printer

// StyleID names one of the built-in receipt layouts.
type StyleID string

const (
	StyleClassic    StyleID = "classic"
	StyleDecorative StyleID = "decorative"
	StyleModern     StyleID = "modern"
	StyleElegant    StyleID = "elegant"
)

// DefaultStyle is used when a requested style id is unknown, so a
// reprint never fails just because a style name was mistyped or
// removed.
const DefaultStyle = StyleClassic

// Style is one named visual layout. All styles surface the same
// required fields (organization, token, farmer, items, total,
// timestamp); they differ only in decoration and arrangement.
type Style struct {
	ID          StyleID `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`

	layout func(b *Builder, d ReceiptData)
}

var catalog = []Style{
	{
		ID:          StyleClassic,
		Label:       "Classic",
		Description: "Plain separators, the layout the counters started with",
		layout:      classicLayout,
	},
	{
		ID:          StyleDecorative,
		Label:       "Decorative",
		Description: "Boxed borders with emphasized token number",
		layout:      decorativeLayout,
	},
	{
		ID:          StyleModern,
		Label:       "Modern",
		Description: "Minimal rules, wide token line",
		layout:      modernLayout,
	},
	{
		ID:          StyleElegant,
		Label:       "Elegant",
		Description: "Centered layout with underlined headings",
		layout:      elegantLayout,
	},
}

// Catalog returns the styles in their fixed display order. The set is
// closed; styles are not user defined.
func Catalog() []Style {
	out := make([]Style, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the style for id, falling back to DefaultStyle for
// unknown ids.
func Lookup(id StyleID) Style {
	for _, s := range catalog {
		if s.ID == id {
			return s
		}
	}
	return Lookup(DefaultStyle)
}

// Render produces the complete operation sequence for one receipt:
// initialize, style body, attribute reset, feed and cut. The result
// depends only on the input data, so rendering twice is byte-identical.
func Render(d ReceiptData, id StyleID) []Operation {
	s := Lookup(id)
	b := NewBuilder()
	b.Append(Initialize{})
	s.layout(b, d)
	// Attribute-neutral tail: nothing set by the style may leak past
	// the receipt boundary into the next job.
	b.Bold(false)
	b.Size(1, 1)
	b.Align(AlignLeft)
	b.Append(Feed{Lines: 3}, CutPaper{})
	return b.Ops()
}
