package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/internal/cli"
	"github.com/formline/formline-terminal/pkg/models"
)

// SubmissionsResult represents the output structure for submissions command
type SubmissionsResult struct {
	FormID      string              `json:"form_id" yaml:"form_id"`
	Submissions []models.Submission `json:"submissions" yaml:"submissions"`
	Count       int                 `json:"count" yaml:"count"`
}

// NewSubmissionsCommand creates the submissions command
func NewSubmissionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submissions <form-id>",
		Short: "List submissions recorded for a form",
		Long: `List the submissions collected for a form, newest last.

Examples:
  # List submissions as a table
  formline submissions contact-1712345678901-0a1b2

  # Dump submissions as JSON
  formline submissions contact-1712345678901-0a1b2 -o json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runSubmissions,
	}

	return cmd
}

func runSubmissions(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	form, err := st.GetForm(args[0])
	if err != nil {
		return fmt.Errorf("failed to get form: %w", err)
	}

	subs, err := st.ListSubmissions(form.ID)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, SubmissionsResult{
			FormID:      form.ID,
			Submissions: subs,
			Count:       len(subs),
		})
	}

	if len(subs) == 0 {
		cli.PrintInfo("No submissions yet for '%s'", form.Title)
		return nil
	}

	// Columns follow the form's field order.
	fields := form.SortedFields()

	table := cli.NewTableFormatter(os.Stdout)
	columns := []string{"ID", "SUBMITTED"}
	for _, f := range fields {
		columns = append(columns, cli.TruncateString(f.Label, 20))
	}
	table.Header(columns...)

	for _, sub := range subs {
		row := []string{sub.ID, cli.FormatTime(sub.SubmittedAt)}
		for _, f := range fields {
			row = append(row, cli.TruncateString(answerText(sub.Answers[f.ID]), 20))
		}
		table.Row(row...)
	}
	table.Flush()

	return nil
}

func answerText(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case string:
		if val == "" {
			return "-"
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
