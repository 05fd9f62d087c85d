package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam/pkg/domain"
)

func TestBuiltins(t *testing.T) {
	want := []string{
		"classic", "copper", "emerald", "fire", "forest",
		"golden", "lavender", "ocean", "royal", "sunset",
	}
	assert.Equal(t, want, Names())

	for _, name := range Names() {
		s, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name)
		assert.NoError(t, s.Validate(), name)
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	s, err := Get("OCEAN")
	require.NoError(t, err)
	assert.Equal(t, "ocean", s.Name)
	assert.Equal(t, "#1E90FF", s.Lines)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("neon")
	assert.ErrorIs(t, err, domain.ErrUnknownPalette)
}

func TestGetOrDefault(t *testing.T) {
	assert.Equal(t, "golden", GetOrDefault("golden").Name)
	assert.Equal(t, "classic", GetOrDefault("nope").Name)
	assert.Equal(t, Default(), GetOrDefault(""))
}

func TestSchemeColors(t *testing.T) {
	s, err := Get("classic")
	require.NoError(t, err)

	r, g, b, a := s.BackgroundColor().RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	r, g, b, _ = s.DotColor().RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestValidate_BadColor(t *testing.T) {
	s := Scheme{Name: "broken", Dots: "#GGGGGG", Lines: "#000000", Background: "#000000"}
	assert.Error(t, s.Validate())
}

func TestParseHexFallback(t *testing.T) {
	s := Scheme{Name: "broken", Dots: "nope", Lines: "nope", Background: "nope"}
	assert.Equal(t, color.Black, s.DotColor())
}
