package template

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/orayew2002/rast-a1/a1"
	"github.com/orayew2002/rast-a1/excel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

func newFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// run writes value into cell and lets the registry process it.
func run(t *testing.T, f *excelize.File, r *Registry, cell, value string) (string, error) {
	t.Helper()
	require.NoError(t, f.SetCellStr(sheet, cell, value))

	a, err := a1.ParseAddress(cell)
	require.NoError(t, err)
	return r.Process(f, sheet, a.Row()-1, a.Col()-1, value)
}

func defaultRegistry() *Registry {
	r := New()
	NewDirectiveHandler().WithDefaults().AddFormula(DefaultFormulas()...).Register(r)
	RegisterMergeHandler(r)
	return r
}

func TestDirectiveMerge(t *testing.T) {
	f := newFile(t)

	pattern, err := run(t, f, defaultRegistry(), "B2", "Title {{merge B2:d3}}")
	require.NoError(t, err)
	assert.Equal(t, "{{merge ", pattern)

	v, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Title", v)

	ranges, err := excel.MergedRanges(f, sheet)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "B2:D3", ranges[0].String())
}

func TestDirectiveSeveralInOneCell(t *testing.T) {
	f := newFile(t)

	_, err := run(t, f, defaultRegistry(), "A1", "{{merge A1:C1}}{{bold A1:C1}}{{border A2:C4}}Header")
	require.NoError(t, err)

	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Header", v)

	bold, err := f.GetCellStyle(sheet, "C1")
	require.NoError(t, err)
	border, err := f.GetCellStyle(sheet, "C4")
	require.NoError(t, err)
	assert.NotZero(t, bold)
	assert.NotZero(t, border)
	assert.NotEqual(t, bold, border)

	outside, err := f.GetCellStyle(sheet, "D4")
	require.NoError(t, err)
	assert.Zero(t, outside)
}

func TestDirectiveFormula(t *testing.T) {
	f := newFile(t)

	_, err := run(t, f, defaultRegistry(), "B10", "{{sum b2:$b$9}}")
	require.NoError(t, err)

	formula, err := f.GetCellFormula(sheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "SUM(B2:$B$9)", formula)

	style, err := f.GetCellStyle(sheet, "B10")
	require.NoError(t, err)
	assert.NotZero(t, style)
}

func TestDirectiveFormulasCombine(t *testing.T) {
	f := newFile(t)

	r := New()
	NewDirectiveHandler().AddFormula(
		FormulaKey{Key: "w", FormulaFn: CountIFFormula("W", 1)},
		FormulaKey{Key: "d", FormulaFn: CountIFFormula("8", 8)},
	).Register(r)

	_, err := run(t, f, r, "Z1", "{{w E1:AH1}}{{d E1:AH1}}")
	require.NoError(t, err)

	formula, err := f.GetCellFormula(sheet, "Z1")
	require.NoError(t, err)
	assert.Equal(t, `SUMPRODUCT((E1:AH1="W")*1)+SUMPRODUCT((E1:AH1="8")*8)`, formula)
}

func TestDirectiveBadRange(t *testing.T) {
	f := newFile(t)

	_, err := run(t, f, defaultRegistry(), "A1", "{{merge A1 C3}}")
	require.Error(t, err)
	assert.ErrorIs(t, err, a1.ErrMalformedRange)

	var rerr *a1.RangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, a1.MissingSeparator, rerr.Kind)
	assert.Equal(t, 3, rerr.Pos)

	// the cell is left untouched
	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "{{merge A1 C3}}", v)
}

func TestDirectiveUnknownNameIsKept(t *testing.T) {
	f := newFile(t)

	r := New()
	h := NewDirectiveHandler().AddAction("merge", mergeAction)
	h.Register(r)
	r.Register("{{other ", h.apply)

	_, err := run(t, f, r, "A1", "{{other A1:B2}} {{merge A1:B1}}")
	require.NoError(t, err)

	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "{{other A1:B2}}", v)
}

func TestDirectiveHandlerNames(t *testing.T) {
	h := NewDirectiveHandler().WithDefaults().AddFormula(FormulaKey{Key: "sum", FormulaFn: FuncFormula("SUM")})
	h.AddAction("merge", mergeAction)
	assert.Equal(t, []string{"merge", "bold", "border", "center", "left", "sum"}, h.Names())
}

func TestFormulaHelpers(t *testing.T) {
	const rng = "B2:B9"
	assert.Equal(t, "AVERAGE(B2:B9)", FuncFormula("AVERAGE")(rng))
	assert.Equal(t, `COUNTIF(B2:B9,"W")+B2:B9`, TemplateFormula(`COUNTIF({range},"W")+{range}`)(rng))
	assert.Equal(t, `SUMPRODUCT((B2:B9="W")*1)`, CountIFFormula("W", 1)(rng))
	assert.Equal(t, `IFERROR(SUMPRODUCT(IFERROR(VALUE(B2:B9),0)),0)`, SumNumFormula()(rng))
	assert.Equal(t, `IFERROR(SUMPRODUCT(IFERROR(VALUE(B2:B9)*0+1,0)),0)`, CountNumFormula()(rng))
}

func TestReplaceHandler(t *testing.T) {
	f := newFile(t)

	r := New()
	NewReplaceHandler().Add("{{year}}", "2026").Add("{{month}}", "October").Register(r)

	pattern, err := run(t, f, r, "C3", "{{month}} {{year}}")
	require.NoError(t, err)
	assert.Equal(t, "{{year}}", pattern)

	v, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "October 2026", v)
}

func TestMergeCode(t *testing.T) {
	tests := []struct {
		value  string
		merged []string
	}{
		{"Total[1:0]", []string{"B2:B3"}},
		{"Total[1:1]", []string{"B2:C3"}},
		{"Total[0:2]", []string{"B2:D2"}},
		{"Total[0:0]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			f := newFile(t)
			r := New()
			RegisterMergeHandler(r)

			_, err := run(t, f, r, "B2", tt.value)
			require.NoError(t, err)

			v, err := f.GetCellValue(sheet, "B2")
			require.NoError(t, err)
			assert.Equal(t, "Total", v)

			ranges, err := excel.MergedRanges(f, sheet)
			require.NoError(t, err)
			var got []string
			for _, rng := range ranges {
				got = append(got, rng.String())
			}
			assert.Equal(t, tt.merged, got)
		})
	}
}

func TestMergeCodeIgnoresOtherBrackets(t *testing.T) {
	f := newFile(t)
	r := New()
	RegisterMergeHandler(r)

	_, err := run(t, f, r, "A1", "[note]")
	require.NoError(t, err)

	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "[note]", v)
}

func TestMergeCodePastLastColumn(t *testing.T) {
	f := newFile(t)
	r := New()
	RegisterMergeHandler(r)

	cell := excel.CellName(0, a1.MaxColumn-1)
	_, err := run(t, f, r, cell, "[0:1]")
	assert.ErrorIs(t, err, a1.ErrOutOfRange)
}

func TestStyleManagerCaches(t *testing.T) {
	f := newFile(t)
	sm := NewStyleManager(f)

	a, err := sm.Named("border")
	require.NoError(t, err)
	b, err := sm.Named("border")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := sm.Centered()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = sm.Named("nope")
	assert.ErrorContains(t, err, `unknown style "nope"`)
}

func TestDirectiveRegistrySharedAcrossWorkbooks(t *testing.T) {
	r := defaultRegistry()

	// one registry, several workbooks in flight at once
	const workbooks = 8
	var wg sync.WaitGroup
	errs := make(chan error, workbooks)
	for i := 0; i < workbooks; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			f := excelize.NewFile()
			defer f.Close()

			if _, err := r.Process(f, sheet, 0, 0, "{{bold A1:B2}}"); err != nil {
				errs <- fmt.Errorf("workbook %d: %w", i, err)
				return
			}
			id, err := f.GetCellStyle(sheet, "B2")
			if err != nil {
				errs <- err
				return
			}
			style, err := f.GetStyle(id)
			if err != nil {
				errs <- err
				return
			}
			if style.Font == nil || !style.Font.Bold {
				errs <- fmt.Errorf("workbook %d: B2 is not bold", i)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestDirectiveReusesStyleWithinWorkbook(t *testing.T) {
	f := newFile(t)
	r := defaultRegistry()

	_, err := run(t, f, r, "D1", "{{bold A1:A2}}")
	require.NoError(t, err)
	_, err = run(t, f, r, "D2", "{{bold B1:B2}}")
	require.NoError(t, err)

	a, err := f.GetCellStyle(sheet, "A2")
	require.NoError(t, err)
	b, err := f.GetCellStyle(sheet, "B2")
	require.NoError(t, err)
	assert.NotZero(t, a)
	assert.Equal(t, a, b)
}
