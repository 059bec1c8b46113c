package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/textkit/core/prefs"
)

func TestThemeFor(t *testing.T) {
	assert.Equal(t, prefs.Dark, ThemeFor(prefs.Dark).Name)
	assert.Equal(t, prefs.Light, ThemeFor(prefs.Light).Name)
	assert.Equal(t, prefs.Light, ThemeFor("").Name)
}

func TestThemesDiffer(t *testing.T) {
	light, dark := LightTheme(), DarkTheme()
	assert.NotEqual(t, light.Primary, dark.Primary)
	assert.NotEqual(t, light.Text, dark.Text)
}

func TestNewStyles_NilUsesLight(t *testing.T) {
	s := NewStyles(nil)
	assert.Equal(t, prefs.Light, s.Theme().Name)
	assert.Contains(t, s.Normal.Render("plain"), "plain")
}
