package report

import (
	"fmt"
	"io"
)

// RenderText writes a fixed-width human-readable rendition of the
// report.
func (r *Report) RenderText(w io.Writer) error {
	verdict := func(ok bool) string {
		if ok {
			return "compliant"
		}
		return "non-compliant"
	}
	if _, err := fmt.Fprintf(w, "standard: %s (year %d", r.Standard, r.Year); err != nil {
		return err
	}
	if r.Security > 0 {
		if _, err := fmt.Fprintf(w, ", floor %d bits", r.Security); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ")"); err != nil {
		return err
	}
	if r.Subject != "" {
		if _, err := fmt.Fprintf(w, "subject:  %s\n", r.Subject); err != nil {
			return err
		}
	}
	for _, f := range r.Findings {
		if _, err := fmt.Fprintf(w, "  %-16s %-16s %-13s", f.Aspect, f.Primitive, verdict(f.Compliant)); err != nil {
			return err
		}
		if !f.Compliant {
			if _, err := fmt.Fprintf(w, " use %s", f.Recommended); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "result: %s\n", verdict(r.Compliant))
	return err
}
