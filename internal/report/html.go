package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/idelchi/projstat/internal/projstat"
)

// pageTemplate is the HTML report layout.
//
//go:embed report.html.tmpl
var pageTemplate string

//nolint:gochecknoglobals // Parsed once at startup
var page = template.Must(template.New("report").Funcs(template.FuncMap{
	"humanSize": func(v uint64) string { return HumanSize(v, DefaultPrecision) },
	"comma":     templateComma,
}).Parse(pageTemplate))

// templateComma formats the unsigned counters of the report with thousands separators.
func templateComma(v any) string {
	switch n := v.(type) {
	case uint32:
		return comma(uint64(n))
	case uint64:
		return comma(n)
	default:
		return fmt.Sprint(v)
	}
}

// pageData is the view model of the HTML report.
type pageData struct {
	Main       projstat.MainStat
	Elapsed    uint64
	Breakdowns []Breakdown
	Options    *projstat.Configuration
	Stat       *projstat.ProjectStat
}

// PrintHTML outputs the document as a standalone HTML page. The page embeds
// the options and statistics as a script object named app.
func PrintHTML(doc Document, writer io.Writer) error {
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{
		Main:       doc.Stat.Main,
		Elapsed:    doc.Stat.Performance.ElapsedMicros,
		Breakdowns: Breakdowns(doc),
		Options:    doc.Options,
		Stat:       doc.Stat,
	}); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}

	_, err := buf.WriteTo(writer)

	return err
}
