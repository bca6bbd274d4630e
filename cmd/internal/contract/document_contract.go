package contract

type ValidateDocumentRequest struct {
	Document string `json:"document" validate:"required,max=64"`
}

type NormalizeDocumentRequest struct {
	Document string `json:"document" validate:"required,max=64,taxid"`
}

type BatchValidateRequest struct {
	Documents []string `json:"documents" validate:"required,min=1,max=500,nodupes,dive,required,max=64"`
}

type CheckDigitsRequest struct {
	Base string `json:"base" validate:"required,max=32"`
}

type DocumentResponse struct {
	Type      string `json:"type"`
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

type BatchValidateResponse struct {
	Results []*DocumentResponse `json:"results"`
	Valid   int                 `json:"valid"`
	Invalid int                 `json:"invalid"`
}

type CheckDigitsResponse struct {
	Base        string `json:"base"`
	CheckDigits string `json:"check_digits"`
	CNPJ        string `json:"cnpj"`
	Formatted   string `json:"formatted"`
}

type NormalizeDocumentResponse struct {
	Type      string `json:"type"`
	Canonical string `json:"canonical"`
	Formatted string `json:"formatted"`
}
