package handler

import (
	"brdocs/cmd/internal/contract"
	"brdocs/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type FormatService interface {
	Format(req *contract.FormatRequest) (*contract.FormatResponse, apierror.ErrorResponse)
}

type DefaultFormatRoute struct {
	FormatService FormatService
}

func NewFormatRoute(formatService FormatService) *DefaultFormatRoute {
	return &DefaultFormatRoute{FormatService: formatService}
}

func (f *DefaultFormatRoute) Format(c echo.Context) error {
	var req contract.FormatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := f.FormatService.Format(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
