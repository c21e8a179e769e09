package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"skillserve/internal/adapter/api/middleware"
	"skillserve/internal/adapter/repository"
	"skillserve/internal/domain/entity"
	"skillserve/internal/usecase"
)

func newServiceHandler(t *testing.T, seed ...*entity.Service) *ServiceHandler {
	t.Helper()
	uc := usecase.NewServiceUseCase(repository.NewMemoryServiceRepository())
	for _, s := range seed {
		_, err := uc.AddService(context.Background(), s)
		assert.NoError(t, err)
	}
	return NewServiceHandler(uc)
}

func TestListServicesSearch(t *testing.T) {
	h := newServiceHandler(t,
		&entity.Service{Name: "House Cleaning"},
		&entity.Service{Name: "Gardening"},
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services?search=clean", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListServices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "House Cleaning")
	assert.NotContains(t, rec.Body.String(), "Gardening")
}

func TestAddServiceReturnsInsertedID(t *testing.T) {
	h := newServiceHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/addService",
		strings.NewReader(`{"name":"Painting","price":75,"provider":{"email":"p@x.com"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.AddService(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data entity.InsertResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.InsertedID)
}

func TestListProviderServicesIdentityMismatch(t *testing.T) {
	h := newServiceHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services/b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")
	c.Set(middleware.ContextEmailKey, "a@x.com")

	assert.NoError(t, h.ListProviderServices(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListProviderServicesIdentityMatch(t *testing.T) {
	h := newServiceHandler(t, &entity.Service{Name: "Mine", Provider: entity.Provider{Email: "a@x.com"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services/a@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")
	c.Set(middleware.ContextEmailKey, "a@x.com")

	assert.NoError(t, h.ListProviderServices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mine")
}

func TestDeleteServiceMissingID(t *testing.T) {
	h := newServiceHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/deleteService/none", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("none")

	assert.NoError(t, h.DeleteService(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data entity.DeleteResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(0), body.Data.DeletedCount)
}

func TestGetServiceMalformedID(t *testing.T) {
	h := newServiceHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/service/..", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("..")

	assert.NoError(t, h.GetService(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateServiceUpsert(t *testing.T) {
	h := newServiceHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/updateService/fresh-id",
		strings.NewReader(`{"name":"Fresh","price":10,"description":"d","image":"i","serviceArea":"area"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("fresh-id")

	assert.NoError(t, h.UpdateService(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data entity.WriteResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(0), body.Data.MatchedCount)
	assert.Equal(t, "fresh-id", body.Data.UpsertedID)
}
