package excel

import (
	"fmt"

	"github.com/orayew2002/rast-a1/a1"
	"github.com/xuri/excelize/v2"
)

// corners returns the top-left and bottom-right cell names of r, whatever
// order its ends were written in. excelize wants relative names.
func corners(r a1.Range) (string, string) {
	tl, br := r.Bounds()
	return tl.FormatA1(), br.FormatA1()
}

// MergeRange merges the cells r covers. A single-cell range is left alone.
func MergeRange(f *excelize.File, sheet string, r a1.Range) error {
	if r.Size() == (a1.Size{Height: 1, Width: 1}) {
		return nil
	}

	topLeft, bottomRight := corners(r)
	if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
		return fmt.Errorf("merge %s: %w", r, err)
	}
	return nil
}

// StyleRange applies styleID to every cell r covers.
func StyleRange(f *excelize.File, sheet string, r a1.Range, styleID int) error {
	topLeft, bottomRight := corners(r)
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, styleID); err != nil {
		return fmt.Errorf("style %s: %w", r, err)
	}
	return nil
}

// RangeValues returns the formatted values of the cells r covers, one slice
// per row, top to bottom.
func RangeValues(f *excelize.File, sheet string, r a1.Range) ([][]string, error) {
	tl, _ := r.Bounds()
	size := r.Size()

	rows := make([][]string, size.Height)
	for y := 0; y < size.Height; y++ {
		rows[y] = make([]string, size.Width)
		for x := 0; x < size.Width; x++ {
			cell := tl.Add(a1.Offset{Rows: y, Cols: x}).FormatA1()
			v, err := f.GetCellValue(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell, err)
			}
			rows[y][x] = v
		}
	}
	return rows, nil
}

// MergedRanges returns the merged areas of sheet as parsed ranges.
func MergedRanges(f *excelize.File, sheet string) ([]a1.Range, error) {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("get merge cells: %w", err)
	}

	ranges := make([]a1.Range, 0, len(merges))
	for _, mc := range merges {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		r, err := a1.ParseRange(ref)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", ref, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// MergeAt reports the merged range that contains rc, if any.
func MergeAt(f *excelize.File, sheet string, rc a1.RowCol) (a1.Range, bool, error) {
	ranges, err := MergedRanges(f, sheet)
	if err != nil {
		return a1.Range{}, false, err
	}
	for _, r := range ranges {
		if r.Contains(rc) {
			return r, true, nil
		}
	}
	return a1.Range{}, false, nil
}
