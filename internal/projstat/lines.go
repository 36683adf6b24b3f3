package projstat

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// lineBufferSize is the chunk size used when counting lines.
const lineBufferSize = 64 * 1024

// countLines returns the number of lines in the file at path: one per '\n',
// plus one for a trailing line without a terminator.
func countLines(path string) (lines uint64, err error) {
	file, err := os.Open(path) //nolint:gosec // Paths come from the directory walk
	if err != nil {
		return 0, err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return countReaderLines(file)
}

// countReaderLines counts lines like countLines, reading from r until EOF.
func countReaderLines(r io.Reader) (uint64, error) {
	buf := make([]byte, lineBufferSize)

	var (
		lines uint64
		read  bool
		last  byte
	)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			read = true
			last = buf[n-1]
			lines += uint64(bytes.Count(buf[:n], []byte{'\n'}))
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, err
		}
	}

	if read && last != '\n' {
		lines++
	}

	return lines, nil
}
