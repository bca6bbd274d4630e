package contract

type FormatRequest struct {
	Currency  *float64 `json:"currency"`
	Date      *string  `json:"date" validate:"omitempty,max=64"`
	Text      *string  `json:"text" validate:"omitempty,max=10000"`
	MaxLength int      `json:"max_length" validate:"omitempty,min=1,max=1000"`
}

type FormatResponse struct {
	Currency string `json:"currency,omitempty"`
	Date     string `json:"date,omitempty"`
	Text     string `json:"text,omitempty"`
}
