package routes

import (
	"brdocs/cmd/internal/http/handler"
	"brdocs/cmd/internal/metrics"
	"brdocs/cmd/internal/service"
	"brdocs/cmd/internal/utils/validators"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validators.Register(validate))

	reg := prometheus.NewRegistry()
	docs := service.NewDocumentService(validate, metrics.New(reg))
	formats := service.NewFormatService(validate)

	e := echo.New()
	Register(e, handler.NewDocumentRoute(docs), handler.NewFormatRoute(formats),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetCPF(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/cpf/52998224725", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "CPF", body["type"])
	assert.Equal(t, "529.982.247-25", body["formatted"])
	assert.Equal(t, true, body["valid"])

	rec = do(e, http.MethodGet, "/api/cpf/11111111111", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["valid"])
}

func TestGetCNPJ(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/cnpj/11222333000181", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "CNPJ", body["type"])
	assert.Equal(t, "11.222.333/0001-81", body["formatted"])
	assert.Equal(t, true, body["valid"])
}

func TestGetCNPJ_EscapedMaskSlash(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		path      string
		canonical string
	}{
		{"/api/cnpj/11.222.333%2F0001-81", "11222333000181"},
		{"/api/cnpj/12.abc.345%2F01de-35", "12ABC34501DE35"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, tt.canonical, body["canonical"])
			assert.Equal(t, true, body["valid"])
		})
	}
}

func TestGetCNPJ_BadEscape(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cnpj/placeholder", nil)
	req.URL.Path = "/api/cnpj/11%ZZ"
	req.URL.RawPath = "/api/cnpj/11%ZZ"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Parameter 'cnpj' is not properly escaped", decode(t, rec)["message"])
}

func TestValidateDocument(t *testing.T) {
	e := newTestServer(t)

	t.Run("ok", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/documents/validate", `{"document":"12.ABC.345/01DE-35"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "CNPJ", body["type"])
		assert.Equal(t, true, body["valid"])
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/documents/validate", `{"document":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Malformed JSON body", decode(t, rec)["message"])
	})

	t.Run("missing field", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/documents/validate", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec), "errors")
	})
}

func TestNormalizeDocument(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/documents/normalize", `{"document":"11222333000181"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "CNPJ", body["type"])
	assert.Equal(t, "11.222.333/0001-81", body["formatted"])

	rec = do(e, http.MethodPost, "/api/documents/normalize", `{"document":"11222333000182"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Value must be a valid CPF or CNPJ")
}

func TestValidateBatch(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/documents/validate/batch",
		`{"documents":["529.982.247-25","00000000000000"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(1), body["valid"])
	assert.Equal(t, float64(1), body["invalid"])
	assert.Len(t, body["results"], 2)
}

func TestCalculateCheckDigits(t *testing.T) {
	e := newTestServer(t)

	t.Run("ok", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/cnpj/check-digits", `{"base":"000009844526"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "05", body["check_digits"])
		assert.Equal(t, "00.000.984/4526-05", body["formatted"])
	})

	t.Run("invalid base", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/cnpj/check-digits", `{"base":"1122233300"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec)["message"], "CNPJ base is invalid")
	})
}

func TestFormat(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/format", `{"currency":10,"text":"abcdef","max_length":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "R$\u00a010,00", body["currency"])
	assert.Equal(t, "abc...", body["text"])
	assert.NotContains(t, body, "date")

	rec = do(e, http.MethodPost, "/api/format", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	do(e, http.MethodGet, "/api/cpf/52998224725", "")
	rec = do(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `brdocs_validations_total{kind="CPF",result="valid"} 1`)
}
