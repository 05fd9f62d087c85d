// Package palette provides the named three-color schemes used to render
// kolam patterns.
package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kolamkit/kolam/pkg/domain"
)

// Scheme is a three-color rendering scheme. Colors are #RRGGBB hex.
type Scheme struct {
	Name       string `json:"name"`
	Dots       string `json:"dots"`
	Lines      string `json:"lines"`
	Background string `json:"background"`
}

var builtin = map[string]Scheme{
	"classic":  {Name: "classic", Dots: "#FFFFFF", Lines: "#FFFFFF", Background: "#000000"},
	"golden":   {Name: "golden", Dots: "#FFD700", Lines: "#FFA500", Background: "#8B0000"},
	"ocean":    {Name: "ocean", Dots: "#00CED1", Lines: "#1E90FF", Background: "#191970"},
	"forest":   {Name: "forest", Dots: "#90EE90", Lines: "#32CD32", Background: "#006400"},
	"sunset":   {Name: "sunset", Dots: "#FF6347", Lines: "#FF4500", Background: "#8B0000"},
	"royal":    {Name: "royal", Dots: "#DDA0DD", Lines: "#9370DB", Background: "#4B0082"},
	"emerald":  {Name: "emerald", Dots: "#50C878", Lines: "#00FF7F", Background: "#013220"},
	"copper":   {Name: "copper", Dots: "#B87333", Lines: "#CD7F32", Background: "#2F1B14"},
	"lavender": {Name: "lavender", Dots: "#E6E6FA", Lines: "#DDA0DD", Background: "#301934"},
	"fire":     {Name: "fire", Dots: "#FF4500", Lines: "#DC143C", Background: "#000000"},
}

// Default returns the classic white-on-black scheme.
func Default() Scheme { return builtin["classic"] }

// Get resolves a scheme by name, case-insensitively.
func Get(name string) (Scheme, error) {
	s, ok := builtin[strings.ToLower(name)]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", domain.ErrUnknownPalette, name)
	}
	return s, nil
}

// GetOrDefault resolves a scheme by name, falling back to classic. This is
// the lenient lookup the service endpoints use.
func GetOrDefault(name string) Scheme {
	if s, err := Get(name); err == nil {
		return s
	}
	return Default()
}

// Names lists the registered schemes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that all three colors parse as hex.
func (s Scheme) Validate() error {
	for _, c := range []string{s.Dots, s.Lines, s.Background} {
		if _, err := colorful.Hex(c); err != nil {
			return fmt.Errorf("palette %s: bad color %q: %v", s.Name, c, err)
		}
	}
	return nil
}

// DotColor returns the dot color as a color.Color.
func (s Scheme) DotColor() color.Color { return parseHex(s.Dots) }

// LineColor returns the stroke color as a color.Color.
func (s Scheme) LineColor() color.Color { return parseHex(s.Lines) }

// BackgroundColor returns the fill color as a color.Color.
func (s Scheme) BackgroundColor() color.Color { return parseHex(s.Background) }

func parseHex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.Black
	}
	return c
}
