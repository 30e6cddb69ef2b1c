// Package export renders tabular reports to the CSV and PDF output sinks.
package export

// Table is a rendered report: a name for filenames and titles, a header row,
// and the data rows as strings.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}
