package projstat

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
)

// Extension returns the part of a file name after its last dot, or "" when
// the name has no dot. ".gitignore" has the extension "gitignore".
func Extension(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

// resolveRoot returns the parent directory and the name of the absolute,
// symlink-free form of root, together with that form itself.
func resolveRoot(root string) (resolved, dirName, baseName string, err error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", "", "", fmt.Errorf("resolving absolute path: %w", err)
	}

	resolved, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", "", "", fmt.Errorf("resolving symlinks: %w", err)
	}

	return resolved, filepath.Dir(resolved), filepath.Base(resolved), nil
}

// Scan walks the directory tree at root and returns its raw statistics.
//
// Every regular file is counted. Files whose extension is in cfg.Ignore stop
// there; the others are classified with cfg.Classify and added to the size
// breakdown, and those whose extension is in cfg.Source have their lines
// counted as well. Symlinks and other special entries are skipped.
//
// The scan is all-or-nothing: a directory that cannot be read or a source
// file that cannot be counted aborts it with an error. The walk also stops
// when ctx is done.
//
// The returned statistics are not finalized; see Finalize.
func Scan(ctx context.Context, root string, cfg *Configuration) (*ProjectStat, error) {
	start := time.Now()

	if root == "" {
		root = "."
	}

	root = filepath.Clean(root)

	// validate path exists and is a directory
	if statInfo, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotADirectory, root, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotADirectory, root)
	}

	resolved, dirName, baseName, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	log := slog.With("root", resolved)
	log.Debug("scan started",
		"ignore", []string(cfg.Ignore),
		"source", []string(cfg.Source),
		"types", len(cfg.Types),
	)

	collector := newCollector(dirName, baseName)

	// A single worker keeps callbacks sequential.
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != resolved {
				collector.addFolder()
			}

			return nil
		}

		if !d.Type().IsRegular() {
			log.Debug("skipping special entry", "path", path, "mode", d.Type().String())

			return nil
		}

		collector.countFile()

		ext := Extension(d.Name())
		if cfg.Ignore.Contains(ext) {
			log.Debug("ignoring file", "path", path, "ext", ext)

			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
		}

		size := uint64(fileInfo.Size()) //nolint:gosec // Sizes of regular files are never negative
		fileType := cfg.Classify(ext)
		collector.addFile(fileType, size)

		if !cfg.Source.Contains(ext) {
			return nil
		}

		lines, err := countLines(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
		}

		collector.addSource(fileType, lines)
		log.Debug("counted source file",
			"path", path,
			"type", fileType,
			"lines", lines,
			"size", humanize.IBytes(size),
		)

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	stat := collector.stat
	stat.Performance.ElapsedMicros = uint64(time.Since(start).Microseconds()) //nolint:gosec // Durations are positive

	log.Debug("scan finished",
		"files", stat.Main.Files,
		"folders", stat.Main.Folders,
		"size", humanize.IBytes(stat.Main.TotalSize),
		"elapsed", time.Since(start),
	)

	return stat, nil
}
