// Package output renders session and restore reports for the terminal
// and exports them as YAML for later inspection.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/perfkit/tunectl/pkg/output/styles"
	"github.com/perfkit/tunectl/pkg/snapshot"
	"github.com/perfkit/tunectl/pkg/types"
)

// Renderer writes human-readable reports.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewTerminalRenderer creates a renderer for stdout, with styling
// disabled when stdout is not a terminal.
func NewTerminalRenderer() *Renderer {
	return &Renderer{
		w:     os.Stdout,
		color: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewRenderer creates a renderer for an arbitrary writer, unstyled.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// RenderSessionReport prints the per-action outcome of an apply run.
func (r *Renderer) RenderSessionReport(report *types.SessionReport) {
	title := fmt.Sprintf("Profile %q", report.Profile)
	if report.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintln(r.w, r.styled(styles.Title, title))

	for _, res := range report.Results {
		line := fmt.Sprintf("  %s %s", r.statusWord(res.Status), res.Summary)
		if res.Detail != "" {
			line += r.styled(styles.Muted, " ("+res.Detail+")")
		}
		fmt.Fprintln(r.w, line)
		if res.Error != "" {
			fmt.Fprintln(r.w, r.styled(styles.Muted, "      "+res.Error))
		}
	}

	success, skipped, failed := report.Counts()
	summary := fmt.Sprintf("%d applied, %d skipped, %d failed", success, skipped, failed)
	fmt.Fprintln(r.w)
	if failed > 0 {
		fmt.Fprintln(r.w, r.styled(styles.Failed, summary))
		fmt.Fprintln(r.w, r.styled(styles.Muted, "Failed actions can be re-run with another apply; applied files are reversible with \"tunectl rollback\"."))
	} else {
		fmt.Fprintln(r.w, r.styled(styles.Success, summary))
	}
}

// RenderRestoreReports prints the outcome of a rollback run.
func (r *Renderer) RenderRestoreReports(reports []*snapshot.RestoreReport) {
	fmt.Fprintln(r.w, r.styled(styles.Title, "Rollback"))

	total, failures, pruned := 0, 0, 0
	for _, report := range reports {
		for _, e := range report.Entries {
			total++
			if e.Restored() {
				fmt.Fprintf(r.w, "  %s %s\n", r.styled(styles.Success, "restored"), e.OriginalPath)
				fmt.Fprintln(r.w, r.styled(styles.Muted, "      from "+e.SnapshotPath))
			} else {
				failures++
				fmt.Fprintf(r.w, "  %s %s\n", r.styled(styles.Failed, "failed"), e.OriginalPath)
				fmt.Fprintln(r.w, r.styled(styles.Muted, "      "+e.Error))
			}
		}
		pruned += len(report.Pruned)
	}

	fmt.Fprintln(r.w)
	switch {
	case total == 0:
		fmt.Fprintln(r.w, r.styled(styles.Muted, "No snapshots found, nothing to restore"))
	case failures > 0:
		fmt.Fprintln(r.w, r.styled(styles.Failed, fmt.Sprintf("%d restored, %d failed", total-failures, failures)))
	default:
		fmt.Fprintln(r.w, r.styled(styles.Success, fmt.Sprintf("%d file(s) restored", total)))
	}
	if pruned > 0 {
		fmt.Fprintln(r.w, r.styled(styles.Muted, fmt.Sprintf("%d snapshot file(s) pruned", pruned)))
	}
}

// RenderProfileList prints the selectable catalog.
func (r *Renderer) RenderProfileList(catalog []*types.Profile) {
	fmt.Fprintln(r.w, r.styled(styles.Title, "Available profiles"))
	for _, p := range catalog {
		fmt.Fprintf(r.w, "  %d. %s %s\n", p.Ordinal, r.styled(styles.Bold, p.Name),
			r.styled(styles.Muted, "- "+p.Description))
		for _, action := range p.Actions {
			fmt.Fprintln(r.w, r.styled(styles.Muted, "       "+action.Summary))
		}
	}
}

// RenderError prints a fatal error.
func (r *Renderer) RenderError(err error) {
	fmt.Fprintln(r.w, r.styled(styles.Failed, "Error: ")+err.Error())
}

func (r *Renderer) statusWord(status types.ActionStatus) string {
	padded := fmt.Sprintf("%-7s", status)
	switch status {
	case types.StatusSuccess:
		return r.styled(styles.Success, padded)
	case types.StatusSkipped:
		return r.styled(styles.Skipped, padded)
	default:
		return r.styled(styles.Failed, padded)
	}
}

func (r *Renderer) styled(style interface{ Render(...string) string }, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// ConfirmApply asks the user to confirm a mutating run. Declining is a
// clean abort, not an error.
func ConfirmApply(profile string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText(fmt.Sprintf("Apply profile %q? System files will be modified (snapshots are taken first)", profile)).
		Show()
}

// SelectProfile shows an interactive menu over the catalog and returns
// the chosen profile name.
func SelectProfile(names []string) (string, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(names).
		WithDefaultText("Select a tuning profile").
		Show()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(choice), nil
}
