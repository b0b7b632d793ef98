package audit

import "github.com/keywarden/keywarden/internal/report"

// RecordPrimitive writes one event for a raw primitive assessment.
func RecordPrimitive(w Writer, family, name string, r *report.Report) error {
	ev := NewEvent(EventPrimitiveAssessed, ResultSuccess).
		WithObject(Object{Type: "primitive", Name: name})
	ev.Context = reportContext(r)
	ev.Context.Family = family
	return w.Write(ev)
}

// RecordCertificate writes one event for a certificate assessment.
func RecordCertificate(w Writer, path string, r *report.Report) error {
	ev := NewEvent(EventCertificateAssessed, ResultSuccess).
		WithObject(Object{Type: "certificate", Subject: r.Subject, Path: path})
	ev.Context = reportContext(r)
	return w.Write(ev)
}

func reportContext(r *report.Report) Context {
	ctx := Context{
		Standard:  r.Standard,
		Security:  r.Security,
		Year:      r.Year,
		Compliant: r.Compliant,
	}
	// The first non-compliant finding carries the actionable
	// recommendation.
	for _, f := range r.Findings {
		if !f.Compliant {
			ctx.Recommended = f.Recommended
			break
		}
	}
	return ctx
}
