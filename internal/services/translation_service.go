package services

import (
	"fmt"
	"strings"

	"touristguide/internal/domain/models"
)

// phrasebook maps a lower-cased phrase to its translation per target language.
var phrasebook = map[string]map[string]string{
	"hello":     {"es": "hola", "fr": "bonjour", "hi": "namaste", "de": "hallo"},
	"thank you": {"es": "gracias", "fr": "merci", "hi": "dhanyavad", "de": "danke"},
	"where is the bathroom?": {
		"es": "¿dónde está el baño?",
		"fr": "où sont les toilettes ?",
		"hi": "shauchalaya kahan hai?",
		"de": "wo ist die toilette?",
	},
}

type TranslationService struct{}

func (TranslationService) Translate(req models.TranslationRequest) (models.TranslationResponse, error) {
	if err := req.Validate(); err != nil {
		return models.TranslationResponse{}, err
	}

	phrase := strings.ToLower(strings.TrimSpace(req.Text))
	target := strings.ToLower(strings.TrimSpace(req.TargetLang))

	translated, ok := phrasebook[phrase][target]
	if !ok {
		translated = fmt.Sprintf("[Simulated Translation to %s]: %s", req.TargetLang, req.Text)
	}

	return models.TranslationResponse{
		Original:   req.Text,
		Translated: translated,
		Source:     req.SourceLang,
		Target:     req.TargetLang,
	}, nil
}
