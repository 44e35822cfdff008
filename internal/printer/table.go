package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/stoewer/go-strcase"
)

// cells longer than this are truncated unless the table is wide
const maxCellWidth = 100

// TablePrinter collects rows and renders them as an aligned table
type TablePrinter struct {
	writer     io.Writer
	headers    []string
	rows       [][]string
	noHeaders  bool
	wide       bool
	outputType OutputType
}

type Option func(*TablePrinter)

func WithNoHeaders() Option {
	return func(p *TablePrinter) {
		p.noHeaders = true
	}
}

func WithWide() Option {
	return func(p *TablePrinter) {
		p.wide = true
	}
}

func WithOutputType(outputType OutputType) Option {
	return func(p *TablePrinter) {
		p.outputType = outputType
	}
}

func NewTablePrinter(w io.Writer, opts ...Option) *TablePrinter {
	if w == nil {
		w = os.Stdout
	}
	p := &TablePrinter{
		writer:     w,
		rows:       [][]string{},
		outputType: OutputTypeTable,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TablePrinter) SetHeaders(headers ...string) {
	p.headers = headers
}

func (p *TablePrinter) AddRow(values ...interface{}) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = p.formatCell(v)
	}
	p.rows = append(p.rows, row)
}

// Render writes the table. JSON and YAML output types emit one object per
// row keyed by the snake_cased headers instead.
func (p *TablePrinter) Render() error {
	if len(p.headers) == 0 && len(p.rows) == 0 {
		return nil
	}

	switch p.outputType {
	case OutputTypeJSON, OutputTypeYAML:
		out := New(p.outputType)
		out.SetOutput(p.writer)
		return out.Print(p.records())
	}

	table := tablewriter.NewWriter(p.writer)
	if !p.noHeaders && len(p.headers) > 0 {
		table.SetHeader(p.headers)
	}
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(p.rows)
	table.Render()
	return nil
}

func (p *TablePrinter) records() []map[string]string {
	records := make([]map[string]string, 0, len(p.rows))
	for _, row := range p.rows {
		rec := make(map[string]string, len(row))
		for i, cell := range row {
			key := fmt.Sprintf("column_%d", i)
			if i < len(p.headers) {
				key = strcase.SnakeCase(p.headers[i])
			}
			rec[key] = cell
		}
		records = append(records, rec)
	}
	return records
}

func (p *TablePrinter) formatCell(v interface{}) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	default:
		s = fmt.Sprint(val)
	}
	if !p.wide {
		s = TruncateString(s, maxCellWidth)
	}
	return s
}
