// Package report renders finalized project statistics as an HTML page,
// JSON, YAML or terminal tables.
package report
