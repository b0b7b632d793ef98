package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/internal/store"
)

// History command flags
var (
	saveHistory  bool
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved assessments",
	Long: `List assessments saved to the history store, newest first.

Assessments are saved when a command is run with --save and a store
path is configured.

Examples:
  keywarden history
  keywarden history -n 5 --json`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "num", "n", 20, "Number of assessments to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
}

// addSaveFlag registers the --save flag on an assess command.
func addSaveFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&saveHistory, "save", false,
		"Save the assessment to the history store")
}

// saveAssessment persists a primitive assessment when --save is set.
func saveAssessment(family, name string, rep *report.Report) error {
	if !saveHistory {
		return nil
	}
	return saveRecord(store.NewRecord("primitive", family, name, rep))
}

func saveRecord(rec *store.AssessmentRecord) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return st.SaveAssessment(context.Background(), rec)
}

func openStore() (store.Store, error) {
	if cfg.Store.Path == "" {
		return nil, fmt.Errorf("no store path configured (set store.path in the config file)")
	}
	return store.NewSQLiteStore(cfg.Store.Path)
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListAssessments(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No saved assessments")
		return nil
	}

	if historyJSON {
		for _, rec := range records {
			fmt.Fprintln(out, rec.Report)
		}
		return nil
	}

	verdict := func(ok bool) string {
		if ok {
			return "compliant"
		}
		return "non-compliant"
	}
	for _, rec := range records {
		name := rec.Primitive
		if rec.Kind == "certificate" {
			name = rec.Subject
		}
		fmt.Fprintf(out, "%s  %-8s %-24s %-8s %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Standard,
			name,
			verdict(rec.Compliant),
			rec.ID,
		)
	}
	return nil
}
