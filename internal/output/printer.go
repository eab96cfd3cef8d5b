// Package output renders runner results for the console.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

const (
	// defaultSeparator is the default separator for table data.
	defaultSeparator = '─'
)

// Printer writes tables, messages and JSON to a writer.
type Printer struct {
	w         io.Writer
	jsonEnc   *json.Encoder
	separator rune
	noColor   bool
}

// TableData is a table with a header row.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// New returns a printer writing to w. Headers are rendered bold unless noColor is set.
func New(w io.Writer, noColor bool) *Printer {
	return &Printer{
		w:         w,
		jsonEnc:   json.NewEncoder(w),
		separator: defaultSeparator,
		noColor:   noColor,
	}
}

// Println prints a line of text.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Printf prints formatted text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Table prints data in tabular format.
func (p *Printer) Table(data TableData) error {
	if err := validateTableData(data); err != nil {
		return err
	}
	// Align into a buffer first so styling the header does not skew the column widths.
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', tabwriter.TabIndent)

	// Create format pattern based on number of columns
	fmtPattern := strings.Repeat("%v\t", len(data.Headers)-1) + "%v\n"

	fmt.Fprintf(tw, fmtPattern, toAnySlice(data.Headers)...)
	separators := make([]string, len(data.Headers))
	for i := range separators {
		separators[i] = strings.Repeat(string(p.separator), len(data.Headers[i]))
	}
	fmt.Fprintf(tw, fmtPattern, toAnySlice(separators)...)
	for _, row := range data.Rows {
		fmt.Fprintf(tw, fmtPattern, toAnySlice(row)...)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	header, rest, _ := strings.Cut(buf.String(), "\n")
	if !p.noColor {
		header = lipgloss.NewStyle().Bold(true).Render(header)
	}
	_, err := fmt.Fprintf(p.w, "%s\n%s", header, rest)
	return err
}

// JSON prints any struct with json tags as JSON.
func (p *Printer) JSON(v any) error {
	return p.jsonEnc.Encode(v)
}

func validateTableData(data TableData) error {
	if len(data.Headers) == 0 {
		return errors.New("headers slice cannot be empty")
	}
	for _, row := range data.Rows {
		if len(row) != len(data.Headers) {
			return errors.New("each row must have the same number of columns as headers")
		}
	}
	return nil
}

func toAnySlice(s []string) []any {
	interfaces := make([]any, 0, len(s))
	for _, v := range s {
		interfaces = append(interfaces, v)
	}
	return interfaces
}
