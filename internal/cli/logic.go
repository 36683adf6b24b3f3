package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/projstat/internal/projstat"
	"github.com/idelchi/projstat/internal/report"
)

// outputAuto picks the text report on a terminal and the HTML report otherwise.
const outputAuto = "auto"

func logic(ctx context.Context, options projstat.Options, stdout io.Writer) (err error) {
	cfg, err := options.Configuration()
	if err != nil {
		return err
	}

	format, err := resolveFormat(options.Output, options.File, stdout)
	if err != nil {
		return err
	}

	enableProgress := !options.Debug && isTerminal(os.Stderr)

	if enableProgress {
		// Hide cursor while the status line is shown; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		fmt.Fprintf(os.Stderr, "\r\033[2KScanning %s…\r", options.Path)
	}

	stat, err := projstat.Scan(ctx, options.Path, cfg)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	doc := report.Document{Options: cfg, Stat: projstat.Finalize(stat)}

	if options.File == "" {
		return report.Render(stdout, format, doc)
	}

	file, err := os.Create(options.File)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", closeErr)
		}
	}()

	return report.Render(file, format, doc)
}

// resolveFormat parses the output flag. The auto format renders text when the
// report goes straight to a terminal and HTML otherwise.
func resolveFormat(output, file string, stdout io.Writer) (report.Format, error) {
	if !strings.EqualFold(strings.TrimSpace(output), outputAuto) {
		return report.ParseFormat(output)
	}

	if file == "" && isTerminal(stdout) {
		return report.FormatText, nil
	}

	return report.FormatHTML, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
