package store

import "github.com/keywarden/keywarden/internal/report"

// NewRecord builds an AssessmentRecord from a finished report. Kind is
// "primitive" or "certificate"; family and primitive may be empty for
// certificates. ID and CreatedAt are left for the store to fill.
func NewRecord(kind, family, primitive string, rep *report.Report) *AssessmentRecord {
	rec := &AssessmentRecord{
		Kind:      kind,
		Standard:  rep.Standard,
		Family:    family,
		Primitive: primitive,
		Subject:   rep.Subject,
		Security:  rep.Security,
		Year:      rep.Year,
		Compliant: rep.Compliant,
	}
	// The first non-compliant finding carries the actionable
	// recommendation.
	for _, f := range rep.Findings {
		if !f.Compliant {
			rec.Recommended = f.Recommended
			break
		}
	}
	if data, err := rep.JSON(); err == nil {
		rec.Report = string(data)
	}
	return rec
}
