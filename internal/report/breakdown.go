package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Breakdown kinds, in display order.
const (
	BreakdownAmount = "amount"
	BreakdownSize   = "size"
	BreakdownSource = "source"
)

// Row is one bar of a breakdown chart.
type Row struct {
	// Type is the classified type.
	Type string
	// Label is the displayed type name.
	Label string
	// Members lists the extensions of a composite type; empty for raw extensions.
	Members []string
	// Language is the programming language of a source type, if known.
	Language string
	// Detail describes the absolute value, e.g. "files: 3".
	Detail string
	// Width is the bar width in percent of the largest value.
	Width float64
	// Share is the value in percent of the total.
	Share float64
}

// Composite reports whether the row's type groups several extensions.
func (r Row) Composite() bool {
	return len(r.Members) > 0
}

// Title is the hover text of a composite label.
func (r Row) Title() string {
	return strings.Join(r.Members, ", ")
}

// Breakdown is one of the three charts of a report.
type Breakdown struct {
	// ID identifies the chart (amount, size or source).
	ID string
	// Title is the chart heading.
	Title string
	// Rows follow the order of the finalized statistics.
	Rows []Row
}

// Breakdowns builds the file count, file size and source line charts of doc.
func Breakdowns(doc Document) []Breakdown {
	stat := doc.Stat

	amount := Breakdown{ID: BreakdownAmount, Title: "Files by count"}
	size := Breakdown{ID: BreakdownSize, Title: "Files by size"}
	source := Breakdown{ID: BreakdownSource, Title: "Source lines by language"}

	for _, f := range stat.Files {
		amount.Rows = append(amount.Rows, newRow(doc, f.Type,
			fmt.Sprintf("files: %s", humanize.Comma(int64(f.Amount))),
			f.AmountRelMax, f.AmountRelSum,
		))
		size.Rows = append(size.Rows, newRow(doc, f.Type,
			fmt.Sprintf("size: %s (%s bytes)", HumanSize(f.Size, DefaultPrecision), comma(f.Size)),
			f.SizeRelMax, f.SizeRelSum,
		))
	}

	for _, s := range stat.Source {
		row := newRow(doc, s.Type,
			fmt.Sprintf("lines: %s", comma(s.Count)),
			s.CountRelMax, s.CountRelSum,
		)
		row.Language = Language(s.Type, doc.Options.Types)
		source.Rows = append(source.Rows, row)
	}

	return []Breakdown{amount, size, source}
}

func newRow(doc Document, fileType, detail string, relMax, relSum float64) Row {
	label := fileType
	if label == "" {
		label = `""`
	}

	members, _ := doc.Options.Types.Lookup(fileType)

	return Row{
		Type:    fileType,
		Label:   label,
		Members: members,
		Detail:  detail,
		Width:   percent(relMax),
		Share:   percent(relSum),
	}
}

// percent converts a ratio to a percentage with two decimals.
func percent(ratio float64) float64 {
	return math.Round(ratio*10000) / 100
}

// comma formats an unsigned count with thousands separators.
func comma(v uint64) string {
	if v > math.MaxInt64 {
		return fmt.Sprintf("%d", v)
	}

	return humanize.Comma(int64(v))
}
