package service

import (
	"brdocs/cmd/internal/contract"
	"brdocs/cmd/internal/metrics"
	"brdocs/cmd/internal/utils/apierror"
	"brdocs/cmd/internal/utils/document"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

// BatchWorkers bounds how many documents of a batch are checked at once.
const BatchWorkers = 8

type DocumentService struct {
	Validate *validator.Validate
	Metrics  *metrics.Metrics
}

func NewDocumentService(validate *validator.Validate, m *metrics.Metrics) *DocumentService {
	return &DocumentService{
		Validate: validate,
		Metrics:  m,
	}
}

func (s *DocumentService) CheckCPF(raw string) *contract.DocumentResponse {
	valid := document.IsCPFValid(raw)
	s.Metrics.IncrementValidation(string(document.KindCPF), valid)

	return &contract.DocumentResponse{
		Type:      string(document.KindCPF),
		Input:     raw,
		Canonical: document.SanitizeCPF(raw),
		Formatted: document.FormatCPF(raw),
		Valid:     valid,
	}
}

func (s *DocumentService) CheckCNPJ(raw string) *contract.DocumentResponse {
	valid := document.IsCNPJValid(raw)
	s.Metrics.IncrementValidation(string(document.KindCNPJ), valid)

	return &contract.DocumentResponse{
		Type:      string(document.KindCNPJ),
		Input:     raw,
		Canonical: document.SanitizeCNPJ(raw),
		Formatted: document.FormatCNPJ(raw),
		Valid:     valid,
	}
}

// CheckDocument figures out whether the document is a CPF or a CNPJ before validating it.
// Unrecognized documents are reported as invalid, not as errors.
func (s *DocumentService) CheckDocument(req *contract.ValidateDocumentRequest) (*contract.DocumentResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}
	return s.check(req.Document), nil
}

// Normalize only accepts valid documents and returns their canonical and masked forms.
func (s *DocumentService) Normalize(req *contract.NormalizeDocumentRequest) (*contract.NormalizeDocumentResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	return &contract.NormalizeDocumentResponse{
		Type:      string(document.Detect(req.Document)),
		Canonical: document.Sanitize(req.Document),
		Formatted: document.Format(req.Document),
	}, nil
}

func (s *DocumentService) CheckBatch(ctx context.Context, req *contract.BatchValidateRequest) (*contract.BatchValidateResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	results := make([]*contract.DocumentResponse, len(req.Documents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(BatchWorkers)

	for i, doc := range req.Documents {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.check(doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warnf("batch validation of %d documents interrupted: %v", len(req.Documents), err)
		return nil, apierror.InternalServerError
	}

	resp := &contract.BatchValidateResponse{Results: results}
	for _, r := range results {
		if r.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp, nil
}

func (s *DocumentService) CalculateCheckDigits(req *contract.CheckDigitsRequest) (*contract.CheckDigitsResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	digits, err := document.CalculateCNPJCheckDigits(req.Base)
	if err != nil {
		if errors.Is(err, document.ErrInvalidCNPJBase) {
			s.Metrics.IncrementCheckDigits(metrics.ResultInvalidBase)
			return nil, apierror.InvalidCNPJBaseError
		}
		log.Errorf("failed to calculate check digits for base %s: %v", req.Base, err)
		return nil, apierror.InternalServerError
	}
	s.Metrics.IncrementCheckDigits(metrics.ResultOK)

	base := document.SanitizeCNPJ(req.Base)
	cnpj := base + digits
	return &contract.CheckDigitsResponse{
		Base:        base,
		CheckDigits: digits,
		CNPJ:        cnpj,
		Formatted:   document.FormatCNPJ(cnpj),
	}, nil
}

func (s *DocumentService) check(raw string) *contract.DocumentResponse {
	kind := document.Detect(raw)
	valid := document.IsValid(raw)
	s.Metrics.IncrementValidation(string(kind), valid)

	return &contract.DocumentResponse{
		Type:      string(kind),
		Input:     raw,
		Canonical: document.Sanitize(raw),
		Formatted: document.Format(raw),
		Valid:     valid,
	}
}
