package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/shoestock/internal/stockfile"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// ExportResult is the JSON payload of a file export.
type ExportResult struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded records as a fresh inventory file",
		Long: `Write every record that loads cleanly to a new file in inventory format.

Malformed lines are left out, so an export is also a way to produce a clean
copy of a damaged inventory. Use "-" to write to standard output.

The inventory format cannot escape commas or quotes. The export fails,
writing nothing, when a country, code or product contains a comma, a
double quote or a line break, or starts with a space.

Example:
  shoestock export --out clean.txt
  shoestock export --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output path, or - for stdout (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.load(commandContext(cmd)); err != nil {
		return err
	}
	records := a.tracker.Store().Records()

	if opts.Output == "-" {
		if err := stockfile.Export(records, a.formatter.Writer); err != nil {
			return a.formatter.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to export", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := stockfile.Export(records, &buf); err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to export", err)
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to write export", err)
	}

	result := ExportResult{Path: opts.Output, Records: len(records)}
	if a.formatter.IsJSON() {
		return a.formatter.Success(result)
	}
	return a.formatter.Success(fmt.Sprintf("Exported %d record(s) to %s", result.Records, result.Path))
}
