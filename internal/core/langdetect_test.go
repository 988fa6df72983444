package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthmate-server/internal/models"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Language
	}{
		{"english question", "What is paracetamol used for?", models.LanguageEnglish},
		{"devanagari script", "बुखार की दवा बताइए", models.LanguageHindi},
		{"single devanagari word in latin text", "what is दवा", models.LanguageHindi},
		{"empty string", "", models.LanguageEnglish},
		{"numbers and symbols", "500mg x 3/day?", models.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}
