// Package export renders documents as JSON, quoted CSV or a plain-text
// checklist report.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

// Kind is an export format.
type Kind string

const (
	KindJSON Kind = "json"
	KindCSV  Kind = "csv"
	KindText Kind = "text"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindJSON, KindCSV, KindText:
		return true
	}
	return false
}

// Ext is the file extension for the kind.
func (k Kind) Ext() string {
	if k == KindText {
		return "txt"
	}
	return string(k)
}

// ParseKind parses a format query value. Empty input yields def.
func ParseKind(s string, def Kind) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	k := Kind(s)
	if !k.IsValid() {
		return "", domain.NewValidationError("format", "must be one of json, csv, text")
	}
	return k, nil
}

// Output is a rendered document.
type Output struct {
	ContentType string
	Body        []byte
}

// Tabular documents can be rendered as CSV.
type Tabular interface {
	Table() Table
}

// Reportable documents can be rendered as a text checklist.
type Reportable interface {
	Report() Report
}

// Format renders doc in the requested kind. JSON works for any value; CSV
// and text require doc to implement Tabular or Reportable.
func Format(doc any, kind Kind) (Output, error) {
	switch kind {
	case KindJSON:
		body, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return Output{}, fmt.Errorf("marshal json: %w", err)
		}
		return Output{ContentType: "application/json", Body: body}, nil

	case KindCSV:
		t, ok := doc.(Tabular)
		if !ok {
			return Output{}, domain.NewValidationError("format", "csv is not supported for this document")
		}
		return Output{ContentType: "text/csv; charset=utf-8", Body: renderCSV(t.Table())}, nil

	case KindText:
		r, ok := doc.(Reportable)
		if !ok {
			return Output{}, domain.NewValidationError("format", "text is not supported for this document")
		}
		return Output{ContentType: "text/plain; charset=utf-8", Body: renderText(r.Report())}, nil
	}
	return Output{}, domain.NewValidationError("format", "must be one of json, csv, text")
}
