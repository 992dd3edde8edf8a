package printer

import "strings"

// Preview renders a plain-text approximation of the receipt for
// on-screen display. It replays the exact operation stream the encoder
// would receive, keeping only text and line feeds, so the preview can
// never drift from what the printer lays out.
func Preview(d ReceiptData, id StyleID) string {
	return PreviewOps(Render(d, id))
}

// PreviewOps converts an operation sequence to plain text, dropping
// every printer command.
func PreviewOps(ops []Operation) string {
	var sb strings.Builder
	for _, op := range ops {
		switch v := op.(type) {
		case Text:
			sb.WriteString(v.Content)
		case Feed:
			sb.WriteString(strings.Repeat("\n", v.Lines))
		}
	}
	return sb.String()
}
