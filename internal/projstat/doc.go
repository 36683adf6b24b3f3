// Package projstat provides project statistics collection and analysis.
//
// It walks directory trees using fastwalk, classifies files into logical
// types by extension, aggregates counts and sizes per type, and counts lines
// of the files registered as source code.
package projstat
