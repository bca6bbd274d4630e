package handler

import (
	"brdocs/cmd/internal/contract"
	"brdocs/cmd/internal/utils/apierror"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

type DocumentService interface {
	CheckCPF(raw string) *contract.DocumentResponse
	CheckCNPJ(raw string) *contract.DocumentResponse
	CheckDocument(req *contract.ValidateDocumentRequest) (*contract.DocumentResponse, apierror.ErrorResponse)
	Normalize(req *contract.NormalizeDocumentRequest) (*contract.NormalizeDocumentResponse, apierror.ErrorResponse)
	CheckBatch(ctx context.Context, req *contract.BatchValidateRequest) (*contract.BatchValidateResponse, apierror.ErrorResponse)
	CalculateCheckDigits(req *contract.CheckDigitsRequest) (*contract.CheckDigitsResponse, apierror.ErrorResponse)
}

type DefaultDocumentRoute struct {
	DocumentService DocumentService
}

func NewDocumentRoute(documentService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocumentService: documentService}
}

func (d *DefaultDocumentRoute) GetCPF(c echo.Context) error {
	cpf, apierr := pathParam(c, "cpf")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, d.DocumentService.CheckCPF(cpf))
}

func (d *DefaultDocumentRoute) GetCNPJ(c echo.Context) error {
	cnpj, apierr := pathParam(c, "cnpj")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, d.DocumentService.CheckCNPJ(cnpj))
}

func (d *DefaultDocumentRoute) ValidateDocument(c echo.Context) error {
	var req contract.ValidateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := d.DocumentService.CheckDocument(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDocumentRoute) NormalizeDocument(c echo.Context) error {
	var req contract.NormalizeDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := d.DocumentService.Normalize(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDocumentRoute) ValidateBatch(c echo.Context) error {
	var req contract.BatchValidateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := d.DocumentService.CheckBatch(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDocumentRoute) CalculateCheckDigits(c echo.Context) error {
	var req contract.CheckDigitsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := d.DocumentService.CalculateCheckDigits(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// pathParam unescapes a path parameter, echo hands it over still encoded
// when the client escaped a mask slash (%2F).
func pathParam(c echo.Context, name string) (string, apierror.ErrorResponse) {
	raw, err := url.PathUnescape(c.Param(name))
	if err != nil {
		return "", apierror.NewInvalidParamError(name)
	}

	val := strings.TrimSpace(raw)
	if val == "" {
		return "", apierror.NewMissingParamError(name)
	}
	return val, nil
}
