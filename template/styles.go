package template

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// namedStyles are the styles a range directive can apply, keyed by the
// directive name ("{{border B2:D9}}").
var namedStyles = map[string]func() *excelize.Style{
	"border": func() *excelize.Style {
		return &excelize.Style{Font: defaultFont(), Border: thinBorder()}
	},
	"center": func() *excelize.Style {
		return &excelize.Style{
			Font:      defaultFont(),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}
	},
	"left": func() *excelize.Style {
		return &excelize.Style{
			Font:      defaultFont(),
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border:    thinBorder(),
		}
	},
	"bold": func() *excelize.Style {
		font := defaultFont()
		font.Bold = true
		return &excelize.Style{Font: font}
	},
}

// StyleNames returns the names accepted by StyleManager.Named, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(namedStyles))
	for name := range namedStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Named returns the style registered under name (cached).
func (sm *StyleManager) Named(name string) (int, error) {
	if id, ok := sm.cache[name]; ok {
		return id, nil
	}

	build, ok := namedStyles[name]
	if !ok {
		return 0, fmt.Errorf("unknown style %q", name)
	}

	id, err := sm.file.NewStyle(build())
	if err != nil {
		return 0, fmt.Errorf("style %q: %w", name, err)
	}

	sm.cache[name] = id
	return id, nil
}

// Centered returns the center-aligned bordered style used for formula cells.
func (sm *StyleManager) Centered() (int, error) {
	return sm.Named("center")
}

func defaultFont() *excelize.Font {
	return &excelize.Font{Family: "Times New Roman", Size: 11}
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
