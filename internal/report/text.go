package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// BarWidth is the number of cells of a full-width bar.
	BarWidth = 30
)

//nolint:gochecknoglobals // Chart colours
var barStyles = map[string]lipgloss.Style{
	BreakdownAmount: lipgloss.NewStyle().Foreground(lipgloss.Color("#22B222")),
	BreakdownSize:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2222B2")),
	BreakdownSource: lipgloss.NewStyle().Foreground(lipgloss.Color("#B22222")),
}

// PrintText outputs the document as a summary followed by one table per breakdown.
//
//nolint:forbidigo // This function prints output to the console.
func PrintText(doc Document, writer io.Writer) error {
	totals := doc.Stat.Main

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Overview:\t\t")
	fmt.Fprintf(w, "Name:\t%s\n", totals.BaseName)
	fmt.Fprintf(w, "Location:\t%s\n", totals.DirName)
	fmt.Fprintf(w, "Folders:\t%s\n", comma(uint64(totals.Folders)))
	fmt.Fprintf(w, "Files:\t%s\n", comma(uint64(totals.Files)))
	fmt.Fprintf(w, "Size:\t%s (%s bytes)\n", HumanSize(totals.TotalSize, DefaultPrecision), comma(totals.TotalSize))
	fmt.Fprintf(w, "Source:\t%s lines\n", comma(totals.SourceLines))
	fmt.Fprintf(w, "Elapsed:\t%v\n",
		time.Duration(doc.Stat.Performance.ElapsedMicros)*time.Microsecond) //nolint:gosec // Scan durations fit

	if err := w.Flush(); err != nil {
		return err
	}

	for _, breakdown := range Breakdowns(doc) {
		fmt.Fprintf(writer, "\n%s:\n", breakdown.Title)

		if len(breakdown.Rows) == 0 {
			fmt.Fprintln(writer, "  (none)")

			continue
		}

		renderBreakdownTable(writer, breakdown)
	}

	return nil
}

func renderBreakdownTable(writer io.Writer, breakdown Breakdown) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Type", "Share", "", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	style := barStyles[breakdown.ID]

	for _, row := range breakdown.Rows {
		label := row.Label
		if row.Composite() {
			label += " (" + row.Title() + ")"
		}

		if row.Language != "" {
			label += " [" + row.Language + "]"
		}

		table.Append([]string{
			label,
			strconv.FormatFloat(row.Share, 'f', -1, 64) + "%",
			style.Render(bar(row.Width)),
			row.Detail,
		})
	}

	table.Render()
}

// bar draws a horizontal bar for a width given in percent of BarWidth.
// Any non-zero width gets at least one cell.
func bar(width float64) string {
	cells := int(math.Round(width / 100 * BarWidth))
	if cells == 0 && width > 0 {
		cells = 1
	}

	return strings.Repeat("█", cells)
}
