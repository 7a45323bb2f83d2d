package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/pkg/ctxutil"
)

// Export renders a list as text (default), csv or json. The returned name
// is the suggested download file name.
func (s *Service) Export(ctx context.Context, listID uuid.UUID, kind export.Kind) (export.Output, string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return export.Output{}, "", domain.ErrUnauthorized
	}

	if kind == "" {
		kind = export.KindText
	}

	list, err := s.loadList(ctx, userID, listID)
	if err != nil {
		return export.Output{}, "", err
	}

	doc := &listDocument{ListWithTotals{ShoppingList: *list, ShoppingListTotals: list.Totals()}}
	out, err := export.Format(doc, kind)
	if err != nil {
		return export.Output{}, "", err
	}

	s.log.InfoContext(ctx, "shopping list exported",
		slog.String("list_id", listID.String()),
		slog.String("format", kind.String()),
	)

	return out, fmt.Sprintf("%s.%s", list.Name, kind.Ext()), nil
}

// listDocument adapts a list to the export renderers.
type listDocument struct {
	ListWithTotals
}

func (d *listDocument) Table() export.Table {
	rows := make([][]string, 0, len(d.Items))
	for i := range d.Items {
		item := &d.Items[i]
		status := "To Buy"
		if item.Purchased {
			status = "Purchased"
		}
		name, details := item.DisplayName(), ""
		switch {
		case item.LineName != nil:
			name = joinNonEmpty(deref(item.BrandName), *item.LineName)
			details = deref(item.Colorway)
		case item.PatternTitle != nil:
			name = *item.PatternTitle
		}
		rows = append(rows, []string{
			status,
			item.ItemType.String(),
			strconv.Itoa(item.Quantity),
			name,
			details,
			money(item.EstimatedPrice),
			money(item.ActualPrice),
			deref(item.Vendor),
			deref(item.Notes),
		})
	}

	return export.Table{
		Preamble: [][]string{
			{"Shopping List", d.Name},
			{"Created", d.CreatedAt.UTC().Format("2006-01-02")},
		},
		Sections: []export.Section{{
			Header: []string{"Status", "Type", "Quantity", "Item", "Details", "Est. Price", "Actual Price", "Vendor", "Notes"},
			Rows:   rows,
		}},
	}
}

func (d *listDocument) Report() export.Report {
	r := export.Report{
		Title:       d.Name,
		Description: deref(d.Description),
		Created:     d.CreatedAt,

		PendingHeading: "TO BUY:",
		DoneHeading:    "PURCHASED:",
		Pending:        []export.ReportLine{},
		Done:           []export.ReportLine{},

		PendingTotal: "Total Estimated",
		DoneTotal:    "Total Spent",
	}
	for i := range d.Items {
		item := &d.Items[i]
		if item.Purchased {
			r.Done = append(r.Done, export.ReportLine{
				Label:    item.DisplayName(),
				Quantity: item.Quantity,
				Amount:   lineTotal(item.ActualPrice, item.Quantity),
				Date:     item.PurchaseDate,
			})
			continue
		}
		r.Pending = append(r.Pending, export.ReportLine{
			Label:    item.DisplayName(),
			Quantity: item.Quantity,
			Amount:   lineTotal(item.EstimatedPrice, item.Quantity),
			Vendor:   deref(item.Vendor),
			Notes:    deref(item.Notes),
		})
	}
	return r
}

func lineTotal(price *float64, qty int) *float64 {
	if price == nil {
		return nil
	}
	v := *price * float64(qty)
	return &v
}

func money(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
