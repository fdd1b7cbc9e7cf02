package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-cli/internal/models"
)

func TestCenter(t *testing.T) {
	assert.Equal(t, " ab ", center("ab", 4))
	// Odd padding puts the extra space on the right.
	assert.Equal(t, "ab ", center("ab", 3))
	assert.Equal(t, " abc ", center("abc", 5))
	// Strings at or over width come back unchanged.
	assert.Equal(t, "abcd", center("abcd", 4))
	assert.Equal(t, "abcde", center("abcde", 3))
}

func TestRender_ClearGlyphWidth(t *testing.T) {
	report := models.Report{
		City:        "Reno",
		CurrentTemp: 71.2,
		TempMax:     75.0,
		TempMin:     58.4,
		WindSpeed:   4.6,
		Condition:   "Clear",
	}

	lines := strings.Split(strings.TrimRight(Render(report), "\n"), "\n")
	require.Len(t, lines, 4)

	// Width is max(len of Clear's fourth glyph line, len("Reno")) = 7,
	// so every glyph/city segment occupies exactly 7 columns and each
	// label starts at column 9.
	for i, line := range lines {
		assert.Equal(t, " ", line[7:8], "line %d: column 8 must be the separator: %q", i, line)
	}

	assert.Equal(t, ` \ | /  Temperature: 71.2`, lines[0])
	assert.Equal(t, ` - O -  Min: 75`, lines[1])
	assert.Equal(t, ` / | \  Max: 58.4`, lines[2])
	assert.Equal(t, ` Reno   Wind Speed: 4.6`, lines[3])
}

func TestRender_LabelValuePairing(t *testing.T) {
	report := models.Report{
		City:      "Reno",
		TempMax:   75.0,
		TempMin:   58.4,
		Condition: "Clear",
	}

	out := Render(report)
	// The Min label carries the provider maximum and vice versa.
	assert.Contains(t, out, "Min: 75")
	assert.Contains(t, out, "Max: 58.4")
}

func TestRender_UnknownConditionBlankGlyph(t *testing.T) {
	report := models.Report{
		City:      "Reno",
		Condition: "Tornado",
	}

	lines := strings.Split(strings.TrimRight(Render(report), "\n"), "\n")
	require.Len(t, lines, 4)

	// Blank glyph lines are 3 spaces, centered within len("Reno") = 4,
	// leaving five spaces before each label.
	assert.Equal(t, "     Temperature: 0", lines[0])
	assert.Equal(t, "     Min: 0", lines[1])
	assert.Equal(t, "     Max: 0", lines[2])
	assert.Equal(t, "Reno Wind Speed: 0", lines[3])
}

func TestRender_LongCityWidensField(t *testing.T) {
	report := models.Report{
		City:      "San Francisco",
		Condition: "Snow",
	}

	lines := strings.Split(strings.TrimRight(Render(report), "\n"), "\n")
	require.Len(t, lines, 4)

	// Width follows the 13-character city name, not the 8-column glyph.
	assert.Equal(t, "San Francisco Wind Speed: 0", lines[3])
	assert.Equal(t, 13, strings.Index(lines[0], "Temperature:")-1)
}

func TestRender_MultibyteCityWidth(t *testing.T) {
	report := models.Report{
		City:      "Zürich",
		Condition: "Clear",
	}

	lines := strings.Split(strings.TrimRight(Render(report), "\n"), "\n")
	require.Len(t, lines, 4)

	// "Zürich" is 7 bytes but 6 runes, so the Clear anchor width of 7
	// still wins and the city pads to 7 columns (extra space right).
	assert.Equal(t, "Zürich  Wind Speed: 0", lines[3])
	assert.Equal(t, ` \ | /  Temperature: 0`, lines[0])
}

func TestRender_MultibyteCityWidensField(t *testing.T) {
	report := models.Report{
		City:      "São Paulo",
		Condition: "Clear",
	}

	lines := strings.Split(strings.TrimRight(Render(report), "\n"), "\n")
	require.Len(t, lines, 4)

	// Width is the 9-rune city name; each glyph line centers in 9
	// columns regardless of byte length.
	assert.Equal(t, `  \ | /   Temperature: 0`, lines[0])
	assert.Equal(t, "São Paulo Wind Speed: 0", lines[3])
}

func TestRender_GlyphTableShape(t *testing.T) {
	for label, art := range glyphs {
		for i, line := range art[:3] {
			assert.LessOrEqual(t, len(line), len(art[3]),
				"%s line %d wider than its anchor", label, i)
		}
	}
	assert.Len(t, glyphs["Clear"][3], 7)
}
