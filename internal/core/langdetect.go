package core

import (
	"strings"

	"healthmate-server/internal/models"
)

// hindiKeywords is a fixed list of common Hindi health-domain words used as a
// fallback signal alongside the script check.
var hindiKeywords = []string{
	"क्या", "कैसे", "कब", "कहाँ", "क्यों", "है", "हैं", "में", "से", "का",
	"की", "के", "और", "या", "पर", "दवा", "बीमारी", "स्वास्थ्य", "डॉक्टर",
	"मरीज", "इलाज", "दर्द", "बुखार", "सिरदर्द", "पेट", "खांसी", "सर्दी",
	"जुकाम", "एलर्जी", "संक्रमण", "रक्तचाप", "मधुमेह", "हृदय", "गुर्दे",
	"लीवर", "फेफड़े", "आंख", "कान", "गला", "नाक", "त्वचा", "नींद", "भूख",
	"वजन", "कमजोरी", "चक्कर", "सांस", "गोली", "सिरप", "इंजेक्शन", "जांच",
	"टेस्ट", "रिपोर्ट", "अस्पताल", "नर्स", "फार्मेसी", "उपचार", "सलाह",
}

// DetectLanguage guesses the reply language for a chatbot question. Any
// Devanagari codepoint, or a known Hindi keyword, selects Hindi; everything
// else defaults to English.
func DetectLanguage(text string) models.Language {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return models.LanguageHindi
		}
	}
	for _, w := range hindiKeywords {
		if strings.Contains(text, w) {
			return models.LanguageHindi
		}
	}
	return models.LanguageEnglish
}
