package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewTablePrinter(t *testing.T) {
	buf := &bytes.Buffer{}

	tests := []struct {
		name string
		opts []Option
	}{
		{"No options", []Option{}},
		{"With no headers", []Option{WithNoHeaders()}},
		{"With wide", []Option{WithWide()}},
		{"With JSON output", []Option{WithOutputType(OutputTypeJSON)}},
		{"Multiple options", []Option{WithNoHeaders(), WithWide()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTablePrinter(buf, tt.opts...)

			if p == nil {
				t.Fatal("NewTablePrinter() returned nil")
			}
			if p.writer == nil {
				t.Error("TablePrinter writer is nil")
			}
			if p.rows == nil {
				t.Error("TablePrinter rows is nil")
			}
		})
	}
}

func TestNewTablePrinter_NilWriter(t *testing.T) {
	// Should default to os.Stdout
	p := NewTablePrinter(nil)

	if p.writer == nil {
		t.Error("TablePrinter writer should not be nil even with nil input")
	}
}

func TestSetHeaders(t *testing.T) {
	p := NewTablePrinter(&bytes.Buffer{})

	headers := []string{"Variant", "Chair", "Table"}
	p.SetHeaders(headers...)

	if len(p.headers) != len(headers) {
		t.Fatalf("Expected %d headers, got %d", len(headers), len(p.headers))
	}
	for i, h := range headers {
		if p.headers[i] != h {
			t.Errorf("Header %d: expected %s, got %s", i, h, p.headers[i])
		}
	}
}

func TestAddRow(t *testing.T) {
	p := NewTablePrinter(&bytes.Buffer{})

	tests := []struct {
		name   string
		values []interface{}
	}{
		{"String values", []interface{}{"modern", "modern-chair", "modern-table"}},
		{"Mixed types", []interface{}{"victorian", 2, true}},
		{"With nil", []interface{}{"modern", nil, "modern-table"}},
		{"Empty row", []interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initialCount := len(p.rows)
			p.AddRow(tt.values...)

			if len(p.rows) != initialCount+1 {
				t.Errorf("Expected %d rows, got %d", initialCount+1, len(p.rows))
			}
			lastRow := p.rows[len(p.rows)-1]
			if len(lastRow) != len(tt.values) {
				t.Errorf("Expected row length %d, got %d", len(tt.values), len(lastRow))
			}
		})
	}
}

func TestAddRow_Truncates(t *testing.T) {
	long := strings.Repeat("x", maxCellWidth+20)

	p := NewTablePrinter(&bytes.Buffer{})
	p.AddRow(long)
	if got := len(p.rows[0][0]); got != maxCellWidth {
		t.Errorf("Expected cell truncated to %d, got %d", maxCellWidth, got)
	}

	wide := NewTablePrinter(&bytes.Buffer{}, WithWide())
	wide.AddRow(long)
	if wide.rows[0][0] != long {
		t.Error("Wide tables should not truncate cells")
	}
}

func TestRender_BasicTable(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf)

	p.SetHeaders("Variant", "Chair", "Table")
	p.AddRow("modern", "modern-chair", "modern-table")
	p.AddRow("victorian", "victorian-chair", "victorian-table")

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "VARIANT") {
		t.Error("Headers should be uppercase")
	}
	for _, want := range []string{"modern-chair", "victorian-table"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}
}

func TestRender_NoHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf, WithNoHeaders())

	p.SetHeaders("Variant", "Chair")
	p.AddRow("modern", "modern-chair")

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "VARIANT") {
		t.Error("Headers should not be present with WithNoHeaders()")
	}
	if !strings.Contains(output, "modern-chair") {
		t.Error("Output should contain 'modern-chair'")
	}
}

func TestRender_EmptyTable(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf)

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed on empty table: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("Empty table should produce no output")
	}
}

func TestRender_OnlyHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf)

	p.SetHeaders("Variant", "Factory")

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "VARIANT") {
		t.Error("Should output headers even with no rows")
	}
}

func TestRender_MultipleRows(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf)

	p.SetHeaders("Col1", "Col2", "Col3")
	for i := 0; i < 100; i++ {
		p.AddRow(i, i*2, i*3)
	}

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed with many rows: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 1 header + 100 data rows
	if len(lines) != 101 {
		t.Errorf("Expected 101 lines, got %d", len(lines))
	}
}

func TestRender_SpecialCharacters(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf)

	p.SetHeaders("Name", "Description")
	p.AddRow("victorian", "The result of the VictorianTable collaborating with the (The result of the VictorianChair)")
	p.AddRow("unicode", "Unicode: 你好世界")

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed with special characters: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "(The result of the VictorianChair)") {
		t.Error("Parentheses should be preserved")
	}
	if !strings.Contains(output, "你好世界") {
		t.Error("Unicode characters should be preserved")
	}
}

func TestRender_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf, WithOutputType(OutputTypeJSON))

	p.SetHeaders("Variant", "Chair Type")
	p.AddRow("modern", "ModernChair")
	p.AddRow("victorian", "VictorianChair", "extra")

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	var records []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["chair_type"] != "ModernChair" {
		t.Errorf("Expected chair_type ModernChair, got %q", records[0]["chair_type"])
	}
	if records[1]["column_2"] != "extra" {
		t.Errorf("Expected column_2 extra, got %q", records[1]["column_2"])
	}
}

func TestRender_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf, WithOutputType(OutputTypeYAML))

	p.SetHeaders("Variant")
	p.AddRow("victorian")

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if buf.String() != "- variant: victorian\n" {
		t.Errorf("Unexpected YAML output: %q", buf.String())
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"String shorter than max", "short", 10, "short"},
		{"String equal to max", "exactlyten", 10, "exactlyten"},
		{"String longer than max", "this is a very long string", 10, "this is..."},
		{"Max length 3", "hello", 3, "hel"},
		{"Max length 1", "hello", 1, "h"},
		{"Empty string", "", 10, ""},
		{"Unicode string", "Hello World 世界", 15, "Hello World ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateString(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
			if len(result) > tt.maxLen {
				t.Errorf("Result length %d exceeds maxLen %d", len(result), tt.maxLen)
			}
		})
	}
}

func TestTruncateString_Narrow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"Multibyte runes", "élégant", 2, "él"},
		{"Wide runes", "世界家具", 2, "世"},
		{"Zero", "modern", 0, ""},
		{"Negative", "modern", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateString(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestWithOutputType(t *testing.T) {
	for _, ot := range []OutputType{OutputTypeTable, OutputTypeWide, OutputTypeJSON, OutputTypeYAML} {
		t.Run(string(ot), func(t *testing.T) {
			p := NewTablePrinter(&bytes.Buffer{})
			WithOutputType(ot)(p)

			if p.outputType != ot {
				t.Errorf("Expected outputType %s, got %s", ot, p.outputType)
			}
		})
	}
}

func TestAddRow_TypeConversion(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewTablePrinter(buf)

	p.SetHeaders("String", "Int", "Float", "Bool", "Nil")
	p.AddRow("text", 42, 3.14, true, nil)

	if err := p.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"text", "42", "3.14", "true", "<nil>"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}
}
