package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/orayew2002/rast-a1/a1"
	"github.com/orayew2002/rast-a1/excel"
	"github.com/xuri/excelize/v2"
)

// directivePat matches "{{name RANGE}}". The range text is validated by a1.
var directivePat = regexp.MustCompile(`\{\{([a-z]+) +([^{}]*)\}\}`)

// RangePlaceholder is replaced by the canonical range text in formula templates.
const RangePlaceholder = "{range}"

// Action applies a directive to the range it names.
type Action func(f *excelize.File, sm *StyleManager, sheet string, r a1.Range) error

// FormulaKey pairs a directive name with a formula generator.
//
// Key is the directive name used in the template (e.g. "sum" for "{{sum B2:B9}}").
// FormulaFn receives the canonical range text and returns the formula string.
type FormulaKey struct {
	Key       string
	FormulaFn func(cellRange string) string
}

// ---------- DirectiveHandler ----------

// DirectiveHandler applies "{{name RANGE}}" directives. Every name shares one
// handler, so a cell holding several directives (e.g. "{{merge A1:C1}}{{bold A1:C1}}")
// has all of them applied in one pass even though the registry stops at the
// first matching pattern.
//
// Usage:
//
//	h := template.NewDirectiveHandler().WithDefaults()
//	h.AddFormula(template.FormulaKey{Key: "sum", FormulaFn: template.FuncFormula("SUM")})
//	h.Register(registry)
type DirectiveHandler struct {
	actions  map[string]Action
	formulas map[string]func(string) string
	names    []string
}

// NewDirectiveHandler creates a DirectiveHandler with no directives.
func NewDirectiveHandler() *DirectiveHandler {
	return &DirectiveHandler{
		actions:  make(map[string]Action),
		formulas: make(map[string]func(string) string),
	}
}

// WithDefaults adds the merge directive and one directive per named style.
func (h *DirectiveHandler) WithDefaults() *DirectiveHandler {
	h.AddAction("merge", mergeAction)
	for _, name := range StyleNames() {
		h.AddAction(name, styleAction(name))
	}
	return h
}

// AddAction registers a range action under name. Returns h so calls can be chained.
func (h *DirectiveHandler) AddAction(name string, action Action) *DirectiveHandler {
	h.add(name)
	h.actions[name] = action
	return h
}

// AddFormula registers a formula directive. Returns h so calls can be chained.
func (h *DirectiveHandler) AddFormula(keys ...FormulaKey) *DirectiveHandler {
	for _, k := range keys {
		h.add(k.Key)
		h.formulas[k.Key] = k.FormulaFn
	}
	return h
}

func (h *DirectiveHandler) add(name string) {
	if _, ok := h.actions[name]; ok {
		return
	}
	if _, ok := h.formulas[name]; ok {
		return
	}
	h.names = append(h.names, name)
}

// Names returns the directive names in the order they were added.
func (h *DirectiveHandler) Names() []string {
	return append([]string(nil), h.names...)
}

// Register registers h into r for every directive name.
func (h *DirectiveHandler) Register(r *Registry) {
	for _, name := range h.names {
		r.Register("{{"+name+" ", h.apply)
	}
}

// apply holds no per-workbook state between calls; excelize hands back the
// existing ID when an identical style is created again.
func (h *DirectiveHandler) apply(f *excelize.File, sheet string, row, col int, value string) error {
	sm := NewStyleManager(f)

	var formulas []string
	var applyErr error
	cleaned := directivePat.ReplaceAllStringFunc(value, func(m string) string {
		if applyErr != nil {
			return m
		}

		sub := directivePat.FindStringSubmatch(m)
		name, arg := sub[1], strings.TrimSpace(sub[2])

		action, isAction := h.actions[name]
		formulaFn, isFormula := h.formulas[name]
		if !isAction && !isFormula {
			return m
		}

		r, err := a1.ParseRange(arg)
		if err != nil {
			applyErr = fmt.Errorf("{{%s}}: %w", name, err)
			return m
		}

		if isAction {
			if err := action(f, sm, sheet, r); err != nil {
				applyErr = fmt.Errorf("{{%s %s}}: %w", name, r, err)
			}
			return ""
		}

		formulas = append(formulas, formulaFn(r.String()))
		return ""
	})
	if applyErr != nil {
		return applyErr
	}

	cell := excel.CellName(row, col)
	styleID, _ := f.GetCellStyle(sheet, cell)

	if len(formulas) > 0 {
		if err := f.SetCellFormula(sheet, cell, strings.Join(formulas, "+")); err != nil {
			return fmt.Errorf("set formula at %s: %w", cell, err)
		}
		centered, err := sm.Centered()
		if err != nil {
			return fmt.Errorf("formula cell style: %w", err)
		}
		styleID = centered
	} else if err := f.SetCellStr(sheet, cell, strings.TrimSpace(cleaned)); err != nil {
		return fmt.Errorf("directive handler: set value: %w", err)
	}

	if styleID != 0 {
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("restore style: %w", err)
		}
	}

	return nil
}

func mergeAction(f *excelize.File, _ *StyleManager, sheet string, r a1.Range) error {
	return excel.MergeRange(f, sheet, r)
}

func styleAction(name string) Action {
	return func(f *excelize.File, sm *StyleManager, sheet string, r a1.Range) error {
		id, err := sm.Named(name)
		if err != nil {
			return err
		}
		return excel.StyleRange(f, sheet, r, id)
	}
}

// ---------- formulas ----------

// DefaultFormulas returns the built-in aggregate formula directives.
func DefaultFormulas() []FormulaKey {
	return []FormulaKey{
		{Key: "sum", FormulaFn: FuncFormula("SUM")},
		{Key: "count", FormulaFn: FuncFormula("COUNT")},
		{Key: "counta", FormulaFn: FuncFormula("COUNTA")},
		{Key: "average", FormulaFn: FuncFormula("AVERAGE")},
		{Key: "min", FormulaFn: FuncFormula("MIN")},
		{Key: "max", FormulaFn: FuncFormula("MAX")},
		{Key: "sumnum", FormulaFn: SumNumFormula()},
		{Key: "countnum", FormulaFn: CountNumFormula()},
	}
}

// FuncFormula returns a FormulaFn that applies the worksheet function fn to the range.
//
//	FuncFormula("SUM") → SUM(B2:B9)
func FuncFormula(fn string) func(string) string {
	return func(cellRange string) string {
		return fn + "(" + cellRange + ")"
	}
}

// TemplateFormula returns a FormulaFn that substitutes the range for every
// RangePlaceholder in tpl.
//
//	`SUMPRODUCT(({range}="W")*1)` → SUMPRODUCT((B2:B9="W")*1)
func TemplateFormula(tpl string) func(string) string {
	return func(cellRange string) string {
		return strings.ReplaceAll(tpl, RangePlaceholder, cellRange)
	}
}

// CountIFFormula returns a FormulaFn that counts occurrences of symbol across
// a range, multiplied by value.
//
//	symbol "W", value 1 → SUMPRODUCT((range="W")*1), one per "W"
func CountIFFormula(symbol string, value int) func(string) string {
	return func(cellRange string) string {
		return fmt.Sprintf(`SUMPRODUCT((%s="%s")*%d)`, cellRange, symbol, value)
	}
}

// SumNumFormula returns a FormulaFn that sums all numeric values in the
// range, ignoring non-numeric cells.
//
//	"8", "W", "8" → 8 + 0 + 8 = 16
func SumNumFormula() func(string) string {
	return func(cellRange string) string {
		return fmt.Sprintf(`IFERROR(SUMPRODUCT(IFERROR(VALUE(%s),0)),0)`, cellRange)
	}
}

// CountNumFormula returns a FormulaFn that counts how many cells in the
// range contain a number, ignoring non-numeric cells.
//
//	"8", "W", "8" → 1 + 0 + 1 = 2
func CountNumFormula() func(string) string {
	return func(cellRange string) string {
		return fmt.Sprintf(`IFERROR(SUMPRODUCT(IFERROR(VALUE(%s)*0+1,0)),0)`, cellRange)
	}
}

// ---------- ReplaceHandler ----------

// ReplaceHandler accumulates key→value pairs and registers a single shared
// handler for all of them. Because the registry stops at the first matched
// handler per cell, sharing one handler ensures ALL pairs are replaced in one
// pass, even when a cell contains several keys at once (e.g. "{{year}} {{month}}").
//
// Usage:
//
//	rh := template.NewReplaceHandler()
//	rh.Add("{{start_year}}", "2026")
//	rh.Add("{{month}}", "October")
//	rh.Register(registry)
type ReplaceHandler struct {
	pairs []string
}

// NewReplaceHandler creates an empty ReplaceHandler.
func NewReplaceHandler() *ReplaceHandler {
	return &ReplaceHandler{}
}

// Add appends a key→val pair. Returns h so calls can be chained.
func (h *ReplaceHandler) Add(key, val string) *ReplaceHandler {
	h.pairs = append(h.pairs, key, val)
	return h
}

// Register registers h into r for every key added via Add.
func (h *ReplaceHandler) Register(r *Registry) {
	for i := 0; i < len(h.pairs); i += 2 {
		r.Register(h.pairs[i], h.apply)
	}
}

func (h *ReplaceHandler) apply(f *excelize.File, sheet string, row, col int, value string) error {
	cell := excel.CellName(row, col)

	styleID, _ := f.GetCellStyle(sheet, cell)

	replaced := strings.NewReplacer(h.pairs...).Replace(value)
	if err := f.SetCellStr(sheet, cell, replaced); err != nil {
		return fmt.Errorf("replace handler: %w", err)
	}

	if styleID != 0 {
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("restore style: %w", err)
		}
	}

	return nil
}

// ---------- RegisterMergeHandler ----------

var mergeCodePat = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// RegisterMergeHandler registers a handler that detects [extraRows:extraCols] codes
// embedded in cell values, strips the code, and merges the cell with its neighbours.
//
//	[1:0] → merge with 1 row below, no extra cols
//	[1:1] → merge with 1 row below and 1 col to the right
//	[0:2] → merge 2 cols to the right (horizontal only)
//	[0:0] → strip code only, no merge
//
// Run this in a separate pass (after all row/col insertions are done) so the
// row indices are stable.
func RegisterMergeHandler(r *Registry) {
	r.Register("[", handleMergeCode)
}

func handleMergeCode(f *excelize.File, sheet string, row, col int, value string) error {
	m := mergeCodePat.FindStringSubmatch(value)
	if m == nil {
		return nil // "[" present but not a merge code
	}

	extraRows, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("merge handler: rows %q: %w", m[1], err)
	}
	extraCols, err := strconv.Atoi(m[2])
	if err != nil {
		return fmt.Errorf("merge handler: cols %q: %w", m[2], err)
	}

	topLeft := excel.AddressAt(row, col)
	bottomRight, err := a1.NewAddress(topLeft.Row()+extraRows, topLeft.Col()+extraCols, a1.Relative)
	if err != nil {
		return fmt.Errorf("merge handler: %s%s: %w", topLeft, m[0], err)
	}
	area := a1.Range{From: topLeft, To: bottomRight}

	cell := topLeft.String()
	styleID, _ := f.GetCellStyle(sheet, cell)

	if err := f.SetCellStr(sheet, cell, mergeCodePat.ReplaceAllString(value, "")); err != nil {
		return fmt.Errorf("merge handler: set value: %w", err)
	}

	if extraRows == 0 && extraCols == 0 {
		return nil // nothing to merge
	}

	if err := excel.MergeRange(f, sheet, area); err != nil {
		return fmt.Errorf("merge handler: %w", err)
	}

	if styleID != 0 {
		if err := excel.StyleRange(f, sheet, area, styleID); err != nil {
			return fmt.Errorf("merge handler: %w", err)
		}
	}

	return nil
}
