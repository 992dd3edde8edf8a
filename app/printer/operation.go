package printer

import (
	"fmt"
	"strings"
)

// ReceiptWidth is the printable width in characters at the default font.
// All styles are laid out against this width; it matches the physical
// paper width of the 80mm printers deployed at the counters.
const ReceiptWidth = 42

// Alignment selects the printer-side text alignment.
type Alignment byte

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Attribute is a persistent printer-side text attribute toggle.
type Attribute byte

const (
	AttrBold Attribute = iota
	AttrUnderline
	AttrDoubleWidth
	AttrDoubleHeight
)

// Operation is one element of a print job: either literal text or a
// printer command. Operations are built once per render and consumed
// once, by the ESC/POS encoder or by the preview renderer.
type Operation interface {
	op()
}

// Initialize resets the printer state. It is always the first operation
// of a job so attributes from a prior job cannot bleed into this one.
type Initialize struct{}

// Text places literal characters at the current alignment/attributes.
// Content never includes line breaks; use Feed to advance the paper.
type Text struct {
	Content string
}

// Feed advances the paper by Lines line feeds.
type Feed struct {
	Lines int
}

// SetAlign sets the alignment for subsequent Text operations.
type SetAlign struct {
	Align Alignment
}

// SetAttribute toggles a persistent text attribute on or off.
type SetAttribute struct {
	Attr Attribute
	On   bool
}

// SetTextSize sets the character cell multiplier (1..8 each axis).
type SetTextSize struct {
	Width  int
	Height int
}

// Raster prints a monochrome bitmap, 8 pixels per byte, row-major.
type Raster struct {
	WidthBytes int
	Height     int
	Bits       []byte
}

// CutPaper feeds and cuts the paper. Always the last operation of a job.
type CutPaper struct{}

func (Initialize) op()   {}
func (Text) op()         {}
func (Feed) op()         {}
func (SetAlign) op()     {}
func (SetAttribute) op() {}
func (SetTextSize) op()  {}
func (Raster) op()       {}
func (CutPaper) op()     {}

// Item table column widths. Description is truncated, the numeric
// columns are right aligned, so rows line up in the fixed-pitch font
// regardless of content length.
const (
	colDescription = 18
	colQtyRate     = 11
	colAmount      = 10
	// itemRowWidth = colDescription + 1 + colQtyRate + 1 + colAmount
	itemRowWidth = 41
)

// Builder accumulates print operations. It owns the shared layout math
// (centering, padding, item table columns) so the styles only declare
// the arrangement and decoration of the receipt blocks.
type Builder struct {
	ops []Operation
}

func NewBuilder() *Builder {
	return &Builder{ops: make([]Operation, 0, 64)}
}

// Ops returns the accumulated operation sequence.
func (b *Builder) Ops() []Operation {
	return b.ops
}

func (b *Builder) Append(ops ...Operation) {
	b.ops = append(b.ops, ops...)
}

// Line writes a line of text followed by one line feed.
func (b *Builder) Line(s string) {
	b.Append(Text{Content: s}, Feed{Lines: 1})
}

// Blank writes an empty line.
func (b *Builder) Blank() {
	b.Append(Feed{Lines: 1})
}

func (b *Builder) Align(a Alignment) {
	b.Append(SetAlign{Align: a})
}

func (b *Builder) Bold(on bool) {
	b.Append(SetAttribute{Attr: AttrBold, On: on})
}

func (b *Builder) Underline(on bool) {
	b.Append(SetAttribute{Attr: AttrUnderline, On: on})
}

func (b *Builder) Size(width, height int) {
	b.Append(SetTextSize{Width: width, Height: height})
}

// BoldLine writes a single emphasized line.
func (b *Builder) BoldLine(s string) {
	b.Bold(true)
	b.Line(s)
	b.Bold(false)
}

// Separator writes a full-width line of the given character.
func (b *Builder) Separator(ch byte) {
	b.Line(strings.Repeat(string(ch), ReceiptWidth))
}

// Rule writes a full-width line bracketed by the given corner string,
// e.g. Rule("+", '=') produces "+====....====+".
func (b *Builder) Rule(corner string, fill byte) {
	inner := ReceiptWidth - 2*len(corner)
	if inner < 0 {
		inner = 0
	}
	b.Line(corner + strings.Repeat(string(fill), inner) + corner)
}

// Center pads s with leading spaces so it sits centered in the receipt
// width. Text wider than the receipt is returned unchanged.
func Center(s string) string {
	if len(s) >= ReceiptWidth {
		return s
	}
	return strings.Repeat(" ", (ReceiptWidth-len(s))/2) + s
}

// KeyValue writes a left-aligned key and a right-aligned value spread
// across the receipt width, always separated by at least one space.
func (b *Builder) KeyValue(key, value string) {
	spaces := ReceiptWidth - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	b.Line(key + strings.Repeat(" ", spaces) + value)
}

// ItemHeader writes the item table header row.
func (b *Builder) ItemHeader() {
	b.Line(itemRow("Item", "Qty x Rate", "Amount"))
}

// ItemRow writes one line-item row with fixed column offsets.
func (b *Builder) ItemRow(it LineItem) {
	qtyRate := fmt.Sprintf("%d x %s", it.Quantity, it.UnitRate.StringFixed(2))
	b.Line(itemRow(it.Description, qtyRate, it.LineTotal.StringFixed(2)))
}

func itemRow(desc, qtyRate, amount string) string {
	return padRight(truncate(desc, colDescription), colDescription) + " " +
		padLeft(truncate(qtyRate, colQtyRate), colQtyRate) + " " +
		padLeft(truncate(amount, colAmount), colAmount)
}

func truncate(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
