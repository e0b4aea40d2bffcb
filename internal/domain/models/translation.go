package models

type TranslationRequest struct {
	Text       string `json:"text" validate:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang" validate:"required"`
}

func (r TranslationRequest) Validate() error {
	return validateStruct(r)
}

type TranslationResponse struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Source     string `json:"source"`
	Target     string `json:"target"`
}
