package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := map[string]Language{
		"en":    LanguageEnglish,
		"EN":    LanguageEnglish,
		"es-MX": LanguageSpanish,
		"es_ES": LanguageSpanish,
		"":      DefaultLanguage,
		"  es ": LanguageSpanish,
		"??":    "??",
	}

	for input, want := range tests {
		assert.Equalf(t, want, NormalizeLanguage(input), "NormalizeLanguage(%q)", input)
	}
}

func TestLanguageNextCycles(t *testing.T) {
	assert.Equal(t, LanguageSpanish, LanguageEnglish.Next())
	assert.Equal(t, LanguageEnglish, LanguageSpanish.Next())
	assert.Equal(t, LanguageEnglish, Language("fr").Next())
}

func TestLanguageSupported(t *testing.T) {
	assert.True(t, LanguageEnglish.Supported())
	assert.True(t, LanguageSpanish.Supported())
	assert.False(t, Language("de").Supported())
	assert.Equal(t, "Español", LanguageSpanish.Label())
	assert.Equal(t, "de", Language("de").Label())
}

func TestTextFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "No tasks for this date.", Text("fr", MsgNoClockTasks))
	assert.Equal(t, "No hay tareas para esta fecha.", Text(LanguageSpanish, MsgNoClockTasks))
	assert.Equal(t, "Task Details", Text(LanguageEnglish, MsgTaskHeading))
}
