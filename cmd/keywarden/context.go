package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/pkg/standard"
)

// Assessment flags shared by every assess command.
var (
	againstStandard string
	securityBits    uint16
	contextYear     uint16
	outputFormat    string
)

// addAssessFlags registers the shared assessment flags on a command.
func addAssessFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&againstStandard, "against", "",
		"Standard to assess against (default from config)")
	cmd.Flags().Uint16Var(&securityBits, "security", 0,
		"Minimum acceptable security strength in bits")
	cmd.Flags().Uint16Var(&contextYear, "year", 0,
		"Reference year for deprecation cutovers")
	cmd.Flags().StringVar(&outputFormat, "format", "text",
		"Output format: text, json or cbor")
}

// resetAssessFlags restores the shared flag defaults.
func resetAssessFlags() {
	againstStandard = ""
	securityBits = 0
	contextYear = 0
	outputFormat = "text"
}

// resolveStandard builds the standard and assessment context from the
// shared flags over the configuration defaults.
func resolveStandard() (standard.Standard, standard.Context, error) {
	name := againstStandard
	if name == "" {
		name = cfg.Defaults.Standard
	}
	std, ok := standard.ByName(name)
	if !ok {
		return nil, standard.Context{}, fmt.Errorf("unknown standard: %s (known: %v)", name, standard.Names())
	}

	security := securityBits
	if security == 0 {
		security = cfg.Defaults.Security
	}
	year := contextYear
	if year == 0 {
		year = cfg.Defaults.Year
	}

	var opts []standard.Option
	if security != 0 {
		opts = append(opts, standard.WithSecurity(security))
	}
	if year != 0 {
		opts = append(opts, standard.WithYear(year))
	}
	return std, standard.NewContext(opts...), nil
}

// writeReport renders a report in the selected output format. A
// non-compliant report is still written before the verdict error is
// returned, so scripts get both the detail and a non-zero exit.
func writeReport(w io.Writer, rep *report.Report) error {
	switch outputFormat {
	case "text", "":
		if err := rep.RenderText(w); err != nil {
			return err
		}
	case "json":
		data, err := rep.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "cbor":
		data, err := rep.CBOR()
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (use text, json or cbor)", outputFormat)
	}

	if !rep.Compliant {
		return fmt.Errorf("not compliant with %s", rep.Standard)
	}
	return nil
}
