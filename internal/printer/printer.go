package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"
)

// OutputType selects how command results are rendered
type OutputType string

const (
	OutputTypeTable OutputType = "table"
	OutputTypeWide  OutputType = "wide"
	OutputTypeJSON  OutputType = "json"
	OutputTypeYAML  OutputType = "yaml"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Printer renders structured data in the selected output type
type Printer struct {
	outputType OutputType
	wide       bool
	out        io.Writer
}

func New(outputType OutputType) *Printer {
	return &Printer{
		outputType: outputType,
		wide:       outputType == OutputTypeWide,
		out:        os.Stdout,
	}
}

func (p *Printer) SetOutput(w io.Writer) {
	p.out = w
}

// Structured reports whether the printer emits JSON or YAML instead of text
func (p *Printer) Structured() bool {
	return p.outputType == OutputTypeJSON || p.outputType == OutputTypeYAML
}

// Table returns a table printer writing to the same output
func (p *Printer) Table(opts ...Option) *TablePrinter {
	opts = append([]Option{WithOutputType(p.outputType)}, opts...)
	if p.wide {
		opts = append(opts, WithWide())
	}
	return NewTablePrinter(p.out, opts...)
}

// Print writes data as JSON or YAML depending on the output type
func (p *Printer) Print(data interface{}) error {
	switch p.outputType {
	case OutputTypeJSON:
		return p.PrintJSON(data)
	case OutputTypeYAML:
		return p.PrintYAML(data)
	default:
		return fmt.Errorf("output type %q cannot print raw data, use a table", p.outputType)
	}
}

func (p *Printer) PrintJSON(data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(b))
	return err
}

func (p *Printer) PrintYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func WriteError(w io.Writer, message string) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+message))
}

func WriteWarning(w io.Writer, message string) {
	fmt.Fprintln(w, warningStyle.Render("⚠ "+message))
}

func WriteInfo(w io.Writer, message string) {
	fmt.Fprintln(w, infoStyle.Render(message))
}

// TruncateString shortens s to at most maxLen columns, ending with "..."
// when there is room for it.
func TruncateString(s string, maxLen int) string {
	maxLen = max(maxLen, 0)
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return truncate.String(s, uint(maxLen))
	}
	return truncate.StringWithTail(s, uint(maxLen), "...")
}
