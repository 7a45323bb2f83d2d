package backup

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
)

const docDateLayout = "2006-01-02"

// ExportSnapshot assembles the user's snapshot and renders it for download
// without touching the object store. The returned name is the suggested
// download file name.
func (s *Service) ExportSnapshot(ctx context.Context, userID uuid.UUID, kind export.Kind) (export.Output, string, error) {
	if kind == "" {
		kind = export.KindJSON
	}

	snap, err := s.AssembleSnapshot(ctx, userID)
	if err != nil {
		return export.Output{}, "", fmt.Errorf("assemble snapshot: %w", err)
	}

	out, err := export.Format(&snapshotDocument{Snapshot: snap}, kind)
	if err != nil {
		return export.Output{}, "", err
	}

	name := strings.TrimSuffix(FileName(userID, snap.BackupDate), fileExt) + "." + kind.Ext()

	s.log.InfoContext(ctx, "snapshot exported",
		slog.String("user_id", userID.String()),
		slog.String("format", kind.String()),
		slog.Int("bytes", len(out.Body)),
	)

	return out, name, nil
}

// snapshotDocument adapts a snapshot to the export renderers. JSON output
// is the snapshot itself.
type snapshotDocument struct {
	*domain.Snapshot
}

// Table renders one CSV section per entity family, one row per record.
func (d *snapshotDocument) Table() export.Table {
	e := d.Entities

	yarn := export.Section{
		Title: "YARN INVENTORY",
		Header: []string{"ID", "Brand", "Line", "Colorway", "Color Family", "Dye Lot", "Skeins Total",
			"Skeins Remaining", "Total Yardage", "Remaining Yardage", "Purchase Date", "Purchase Price",
			"Vendor", "Storage Location", "Condition", "Notes", "Created"},
		Rows: make([][]string, 0, len(e.YarnInventory)),
	}
	for i := range e.YarnInventory {
		y := &e.YarnInventory[i]
		yarn.Rows = append(yarn.Rows, []string{
			y.ID.String(), str(y.BrandName), str(y.LineName), str(y.Colorway), str(y.ColorFamily),
			str(y.DyeLot), strconv.Itoa(y.SkeinsTotal), num(&y.SkeinsRemaining), integer(y.TotalYardage),
			integer(y.RemainingYardage), date(y.PurchaseDate), num(y.PurchasePrice), str(y.Vendor),
			str(y.StorageLocation), y.Condition, str(y.Notes), date(&y.CreatedAt),
		})
	}

	patterns := export.Section{
		Title: "PATTERNS",
		Header: []string{"ID", "Title", "Designer", "Craft Type", "Difficulty", "Yardage Required",
			"Price", "Free", "Drive File", "Notes", "Created"},
		Rows: make([][]string, 0, len(e.Patterns)),
	}
	for i := range e.Patterns {
		p := &e.Patterns[i]
		patterns.Rows = append(patterns.Rows, []string{
			p.ID.String(), p.Title, str(p.DesignerName), str(p.CraftType), integer(p.DifficultyLevel),
			integer(p.YardageRequired), num(p.Price), strconv.FormatBool(p.IsFree), str(p.DriveFileID),
			str(p.PersonalNotes), date(&p.CreatedAt),
		})
	}

	projects := export.Section{
		Title: "PROJECTS",
		Header: []string{"ID", "Name", "Pattern", "Status", "Priority", "Start Date", "Target Date",
			"Completion Date", "Hours Worked", "Recipient", "Yarns Used", "Progress Entries", "Created"},
		Rows: make([][]string, 0, len(e.Projects)),
	}
	for i := range e.Projects {
		p := &e.Projects[i]
		projects.Rows = append(projects.Rows, []string{
			p.ID.String(), p.Name, str(p.PatternTitle), p.Status.String(), strconv.Itoa(p.Priority),
			date(p.StartDate), date(p.TargetCompletionDate), date(p.CompletionDate), num(p.TotalHoursWorked),
			str(p.Recipient), strconv.Itoa(len(p.YarnUsage)), strconv.Itoa(len(p.Progress)), date(&p.CreatedAt),
		})
	}

	return export.Table{
		Preamble: [][]string{
			{"Backup Date", d.BackupDate.UTC().Format(time.RFC3339)},
			{"User", d.UserID.String()},
		},
		Sections: []export.Section{yarn, patterns, projects},
	}
}

// Report lists the stash, the pattern library and unfinished projects as
// open lines and finished projects as checked ones. Yarn is valued at
// purchase price per skein.
func (d *snapshotDocument) Report() export.Report {
	e := d.Entities
	r := export.Report{
		Title:       "Yarnstash Backup",
		Description: fmt.Sprintf("%d yarn, %d patterns, %d projects", len(e.YarnInventory), len(e.Patterns), len(e.Projects)),
		Created:     d.BackupDate,

		PendingHeading: "ON HAND:",
		DoneHeading:    "COMPLETED:",
		Pending:        []export.ReportLine{},
		Done:           []export.ReportLine{},

		PendingTotal: "Total Value",
	}

	for i := range e.YarnInventory {
		y := &e.YarnInventory[i]
		r.Pending = append(r.Pending, export.ReportLine{
			Label:    yarnLabel(y),
			Quantity: y.SkeinsTotal,
			Amount:   times(y.PurchasePrice, y.SkeinsTotal),
			Vendor:   str(y.Vendor),
			Notes:    str(y.StorageLocation),
		})
	}
	for i := range e.Patterns {
		p := &e.Patterns[i]
		r.Pending = append(r.Pending, export.ReportLine{
			Label:    "Pattern: " + p.Title,
			Quantity: 1,
			Amount:   p.Price,
		})
	}
	for i := range e.Projects {
		p := &e.Projects[i]
		if p.IsCompleted() {
			r.Done = append(r.Done, export.ReportLine{Label: p.Name, Date: p.CompletionDate})
			continue
		}
		r.Pending = append(r.Pending, export.ReportLine{Label: p.Name, Date: p.TargetCompletionDate})
	}
	return r
}

// yarnLabel shows brand and line plus colorway, falling back to the
// colorway alone for rows without a yarn line.
func yarnLabel(y *domain.YarnStock) string {
	name := strings.TrimSpace(str(y.BrandName) + " " + str(y.LineName))
	colorway := str(y.Colorway)
	switch {
	case name == "" && colorway == "":
		return "Yarn"
	case name == "":
		return colorway
	case colorway == "":
		return name
	}
	return name + " - " + colorway
}

func times(price *float64, qty int) *float64 {
	if price == nil {
		return nil
	}
	v := *price * float64(qty)
	return &v
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func integer(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(docDateLayout)
}
