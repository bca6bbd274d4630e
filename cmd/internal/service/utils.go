package service

import (
	"brdocs/cmd/internal/utils"
	"brdocs/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// validateRequest trims the request strings and runs the struct tags over it.
func validateRequest(validate *validator.Validate, req any) apierror.ErrorResponse {
	if err := utils.Sanitize(req); err != nil {
		log.Errorf("cannot sanitize request %T: %v", req, err)
		return apierror.InternalServerError
	}

	if err := validate.Struct(req); err != nil {
		if serr := apierror.FromValidationError(err); serr != nil {
			return serr
		}
		log.Errorf("cannot validate request %T: %v", req, err)
		return apierror.InternalServerError
	}
	return nil
}
