package projstat

import "errors"

var (
	// ErrNotADirectory is returned when the scan root is missing or not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrUnreadableFile is returned when a source file cannot be opened or read.
	ErrUnreadableFile = errors.New("unreadable file")
	// ErrUnknownProfile is returned for profile names that are not built in.
	ErrUnknownProfile = errors.New("unknown profile")
)
