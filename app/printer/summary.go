package printer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryData is the input for the end-of-day summary ticket.
type SummaryData struct {
	Organization string
	Date         time.Time
	PrintedAt    time.Time
	TotalOrders  int64
	TotalBags    int64
	TotalRevenue decimal.Decimal
	AvgPerOrder  decimal.Decimal
	AvgBags      decimal.Decimal
}

// Inner width of the boxed summary table.
const summaryTableWidth = 36

// RenderSummary produces the operation sequence for the daily sales
// summary ticket.
func RenderSummary(s SummaryData) []Operation {
	b := NewBuilder()
	b.Append(Initialize{})

	b.Align(AlignCenter)
	b.Separator('=')
	b.Size(2, 2)
	b.Bold(true)
	b.Line(s.Organization)
	b.Size(1, 1)
	b.Bold(false)
	b.Underline(true)
	b.BoldLine("DAILY SALES SUMMARY")
	b.Underline(false)
	b.Separator('=')

	b.Align(AlignLeft)
	b.Bold(true)
	b.KeyValue("Date: "+s.Date.Format(dateFormat), "Time: "+s.PrintedAt.Format(timeFormat))
	b.Bold(false)
	b.Blank()

	b.Line(summaryBorder())
	b.Bold(true)
	b.Line(boxedCenter("ORDER SUMMARY"))
	b.Bold(false)
	b.Line(summaryBorder())
	b.Line(summaryRow("Total Orders:", fmt.Sprintf("%d", s.TotalOrders)))
	b.Line(summaryRow("Total Bags:", fmt.Sprintf("%d", s.TotalBags)))
	b.Line(summaryRow("Total Revenue:", "Rs. "+s.TotalRevenue.StringFixed(2)))
	b.Line(summaryBorder())
	b.Line(summaryRow("Avg per Order:", "Rs. "+s.AvgPerOrder.StringFixed(2)))
	b.Line(summaryRow("Avg Bags/Order:", s.AvgBags.StringFixed(1)))
	b.Line(summaryBorder())
	b.Blank()

	if s.TotalOrders > 10 {
		b.Align(AlignCenter)
		b.BoldLine("*** HIGH ACTIVITY DAY ***")
	} else if s.TotalOrders > 5 {
		b.Align(AlignCenter)
		b.BoldLine("** MODERATE ACTIVITY **")
	}

	b.Align(AlignCenter)
	b.Blank()
	b.Underline(true)
	b.BoldLine("END OF DAY REPORT")
	b.Underline(false)
	b.Separator('=')

	b.Bold(false)
	b.Size(1, 1)
	b.Align(AlignLeft)
	b.Append(Feed{Lines: 3}, CutPaper{})
	return b.Ops()
}

func summaryBorder() string {
	return "+" + strings.Repeat("-", summaryTableWidth) + "+"
}

// summaryRow builds "| label        value |" with the value pushed to
// the right edge of the box.
func summaryRow(label, value string) string {
	inner := summaryTableWidth - 2
	spaces := inner - len(label) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	return "| " + label + strings.Repeat(" ", spaces) + value + " |"
}

// boxedCenter centers text inside the summary box borders.
func boxedCenter(s string) string {
	inner := summaryTableWidth
	if len(s) >= inner {
		return "|" + s[:inner] + "|"
	}
	left := (inner - len(s)) / 2
	right := inner - len(s) - left
	return "|" + strings.Repeat(" ", left) + s + strings.Repeat(" ", right) + "|"
}
