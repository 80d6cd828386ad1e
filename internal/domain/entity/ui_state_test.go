package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeLight, ParseTheme(""))
	assert.Equal(t, ThemeLight, ParseTheme("Dark"))
}

func TestTheme_Opposite(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
}
