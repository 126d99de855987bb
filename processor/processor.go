package processor

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/orayew2002/rast-a1/excel"
	"github.com/orayew2002/rast-a1/template"
	"github.com/xuri/excelize/v2"
)

// Processor applies registered template handlers to Excel files.
type Processor struct {
	registry *template.Registry
	logger   *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger that receives per-sheet and per-directive records.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Processor with the given template registry.
func New(registry *template.Registry, opts ...Option) *Processor {
	p := &Processor{registry: registry, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessFile opens the input Excel file, processes all sheets, saves to output,
// and returns the resulting file as bytes.
func (p *Processor) ProcessFile(input, output string) ([]byte, error) {
	f, err := excelize.OpenFile(input)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	if err := p.ProcessWorkbook(f); err != nil {
		return nil, err
	}

	if err := f.SaveAs(output); err != nil {
		return nil, fmt.Errorf("save %s: %w", output, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// ProcessBytes reads an Excel file from raw bytes, processes all sheets,
// and returns the resulting file as bytes.
func (p *Processor) ProcessBytes(data []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open from bytes: %w", err)
	}
	defer f.Close()

	if err := p.ProcessWorkbook(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// ProcessWorkbook processes every sheet of an open workbook in place.
func (p *Processor) ProcessWorkbook(f *excelize.File) error {
	for _, sheet := range f.GetSheetList() {
		n, err := p.processSheet(f, sheet)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		p.logger.Info("sheet processed", "sheet", sheet, "directives", n)
	}
	return nil
}

func (p *Processor) processSheet(f *excelize.File, sheet string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("get rows: %w", err)
	}

	applied := 0
	for row := range rows {
		for col := range rows[row] {
			value := rows[row][col]
			if value == "" {
				continue
			}

			cell := excel.CellName(row, col)
			pattern, err := p.registry.Process(f, sheet, row, col, value)
			if err != nil {
				return applied, fmt.Errorf("cell %s: %w", cell, err)
			}
			if pattern != "" {
				applied++
				p.logger.Debug("directive applied", "sheet", sheet, "cell", cell, "pattern", pattern)
			}
		}
	}

	return applied, nil
}
