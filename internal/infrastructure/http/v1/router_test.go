package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercado/internal/domain/catalogs/employee"
	"mercado/internal/domain/catalogs/product"
	"mercado/internal/domain/catalogs/section"
	"mercado/internal/domain/domaintest"
	"mercado/internal/domain/reports"
)

type fakeAggRepo struct {
	stock    decimal.NullDecimal
	affected int64
}

func (f *fakeAggRepo) StockValue(ctx context.Context, sectionCode string) (decimal.NullDecimal, error) {
	return f.stock, nil
}

func (f *fakeAggRepo) RaisePrices(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error) {
	return f.affected, nil
}

func (f *fakeAggRepo) RaiseSalaries(ctx context.Context, sectionCode string, percent decimal.Decimal) (int64, error) {
	return f.affected, nil
}

type apiFixture struct {
	router   *gin.Engine
	agg      *fakeAggRepo
	sections *domaintest.FakeRepo[*section.Section]
	products *domaintest.FakeRepo[*product.Product]
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sectionRepo := domaintest.NewFakeRepo[*section.Section](
		[]string{"code", "description"},
		func(s *section.Section, col string) string { return s.Code })
	productRepo := domaintest.NewFakeRepo[*product.Product](
		[]string{"code", "description", "price", "stock", "section_code"},
		func(p *product.Product, col string) string {
			if col == "description" {
				return p.Description
			}
			return p.Code
		})
	employeeRepo := domaintest.NewFakeRepo[*employee.Employee](
		[]string{"code", "name", "annual_salary", "section_code"},
		func(e *employee.Employee, col string) string { return e.Code })

	txm := domaintest.FakeTxManager{}
	agg := &fakeAggRepo{}

	router := NewRouter(Deps{
		Sections:  section.NewService(sectionRepo, txm),
		Products:  product.NewService(productRepo, sectionRepo, txm),
		Employees: employee.NewService(employeeRepo, sectionRepo, txm),
		Reports:   reports.NewService(agg, sectionRepo, productRepo, employeeRepo, txm),
	})

	return apiFixture{router: router, agg: agg, sections: sectionRepo, products: productRepo}
}

func (f apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func TestSectionEndpoints(t *testing.T) {
	t.Run("create and fetch", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/sections", `{"code":"FR","description":"Fruits"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/sections/FR", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Fruits")
	})

	t.Run("create accepts an empty description", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/sections", `{"code":"FR","description":""}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/sections/FR", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"description":""`)
	})

	t.Run("duplicate create returns conflict with a code", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sections.Seed(section.New("FR", "Fruits"))

		rec := f.do(http.MethodPost, "/api/v1/sections", `{"code":"FR","description":"Again"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ALREADY_EXISTS", errorCode(t, rec))
	})

	t.Run("missing section is 404", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/sections/XX", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
	})

	t.Run("delete responds with the cascade warning", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sections.Seed(section.New("FR", "Fruits"))

		rec := f.do(http.MethodDelete, "/api/v1/sections/FR", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), section.CascadeWarning)
	})

	t.Run("update with empty description keeps the stored one", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sections.Seed(section.New("FR", "Fruits"))

		rec := f.do(http.MethodPut, "/api/v1/sections/FR", `{"description":""}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Fruits")
	})
}

func TestProductEndpoints(t *testing.T) {
	t.Run("create against a missing section reports the reference", func(t *testing.T) {
		f := newAPIFixture(t)
		f.products.FailNext = true

		rec := f.do(http.MethodPost, "/api/v1/products",
			`{"code":"P001","description":"Apples","price":"2.50","stock":10,"sectionCode":"XX"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "REFERENCE_MISSING", errorCode(t, rec))
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/products",
			`{"code":"TOOLONG","description":"x","price":"1.00","stock":1,"sectionCode":"FR"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("section filter", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sections.Seed(section.New("FR", "Fruits"))
		f.products.Seed(
			product.New("P001", "Apples", decimal.RequireFromString("2.50"), 10, "FR"),
			product.New("P002", "Juice", decimal.RequireFromString("3.20"), 5, "DR"),
		)

		rec := f.do(http.MethodGet, "/api/v1/products?section=FR", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "P001")
		assert.NotContains(t, rec.Body.String(), "P002")
	})
}

func TestReportEndpoints(t *testing.T) {
	t.Run("hostile order_by is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/reports/products?order_by=1%3D1", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("stock value over an empty catalog has no total", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/reports/stock-value", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			HasProducts bool    `json:"hasProducts"`
			Total       *string `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.HasProducts)
		assert.Nil(t, resp.Total)
	})

	t.Run("raise over an empty section is a 422 soft failure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sections.Seed(section.New("FR", "Fruits"))

		rec := f.do(http.MethodPost, "/api/v1/reports/price-raise",
			`{"sectionCode":"FR","percent":"10"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "EMPTY_SECTION", errorCode(t, rec))
	})

	t.Run("salary raise requires a positive percent", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sections.Seed(section.New("FR", "Fruits"))
		f.agg.affected = 2

		rec := f.do(http.MethodPost, "/api/v1/reports/salary-raise",
			`{"sectionCode":"FR","percent":"0"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

		rec = f.do(http.MethodPost, "/api/v1/reports/salary-raise",
			`{"sectionCode":"FR","percent":"10"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"affected":2`)
	})

	t.Run("request id header is echoed", func(t *testing.T) {
		f := newAPIFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sections", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})
}
