package service

import (
	"brdocs/cmd/internal/contract"
	"brdocs/cmd/internal/utils/apierror"
	"brdocs/cmd/internal/utils/format"

	"github.com/go-playground/validator/v10"
)

type FormatService struct {
	Validate *validator.Validate
}

func NewFormatService(validate *validator.Validate) *FormatService {
	return &FormatService{Validate: validate}
}

// Format renders only the fields present in the request.
func (f *FormatService) Format(req *contract.FormatRequest) (*contract.FormatResponse, apierror.ErrorResponse) {
	if req.Currency == nil && req.Date == nil && req.Text == nil {
		return nil, apierror.EmptyFormatRequestError
	}

	if apierr := validateRequest(f.Validate, req); apierr != nil {
		return nil, apierr
	}

	resp := &contract.FormatResponse{}
	if req.Currency != nil {
		resp.Currency = format.Currency(*req.Currency)
	}
	if req.Date != nil {
		resp.Date = format.Date(*req.Date)
	}
	if req.Text != nil {
		resp.Text = format.Truncate(*req.Text, req.MaxLength)
	}
	return resp, nil
}
