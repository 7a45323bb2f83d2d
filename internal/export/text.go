package export

import (
	"fmt"
	"strings"
	"time"
)

const (
	rule       = "=================================================="
	boxPending = "□"
	boxDone    = "☑"
	dateLayout = "2006-01-02"
)

// Report is a checklist with pending and completed lines. Headings and
// total labels are printed as given; a group with no lines is skipped and
// a total with an empty label is not printed. A zero Created omits the
// date line.
type Report struct {
	Title       string
	Description string
	Created     time.Time

	PendingHeading string
	DoneHeading    string
	Pending        []ReportLine
	Done           []ReportLine

	PendingTotal string
	DoneTotal    string
}

// ReportLine is one checklist entry. Amount is the line total (unit price
// times quantity) and is left nil when no price is known. A zero Quantity
// drops the "Nx" prefix.
type ReportLine struct {
	Label    string
	Quantity int
	Amount   *float64
	Vendor   string
	Notes    string
	Date     *time.Time
}

func renderText(r Report) []byte {
	var b strings.Builder

	b.WriteString(r.Title + "\n")
	b.WriteString(r.Description + "\n")
	if !r.Created.IsZero() {
		b.WriteString("Created: " + r.Created.UTC().Format(dateLayout) + "\n")
	}
	b.WriteString(rule + "\n\n")

	if len(r.Pending) > 0 {
		b.WriteString(r.PendingHeading + "\n")
		for _, l := range r.Pending {
			writeLine(&b, boxPending, l)
		}
	}

	if len(r.Done) > 0 {
		if len(r.Pending) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.DoneHeading + "\n")
		for _, l := range r.Done {
			writeLine(&b, boxDone, l)
		}
	}

	b.WriteString("\n" + rule + "\n")
	if r.PendingTotal != "" {
		fmt.Fprintf(&b, "%s: $%.2f\n", r.PendingTotal, sum(r.Pending))
	}
	if r.DoneTotal != "" {
		fmt.Fprintf(&b, "%s: $%.2f\n", r.DoneTotal, sum(r.Done))
	}

	return []byte(b.String())
}

func writeLine(b *strings.Builder, box string, l ReportLine) {
	b.WriteString(box + " ")
	if l.Quantity > 0 {
		fmt.Fprintf(b, "%dx ", l.Quantity)
	}
	b.WriteString(l.Label)
	if l.Amount != nil {
		fmt.Fprintf(b, " ($%.2f)", *l.Amount)
	}
	if l.Vendor != "" {
		b.WriteString(" @ " + l.Vendor)
	}
	if l.Date != nil {
		b.WriteString(" - " + l.Date.UTC().Format(dateLayout))
	}
	if l.Notes != "" {
		b.WriteString("\n   Notes: " + l.Notes)
	}
	b.WriteString("\n")
}

func sum(lines []ReportLine) float64 {
	var total float64
	for _, l := range lines {
		if l.Amount != nil {
			total += *l.Amount
		}
	}
	return total
}
