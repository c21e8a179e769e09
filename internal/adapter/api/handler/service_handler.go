package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"skillserve/internal/adapter/api/middleware"
	"skillserve/internal/domain/entity"
	"skillserve/internal/usecase"
	"skillserve/pkg/errors"
	"skillserve/pkg/response"
)

type ServiceHandler struct {
	serviceUseCase *usecase.ServiceUseCase
}

func NewServiceHandler(serviceUseCase *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
	}
}

type updateServiceRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ServiceArea string  `json:"serviceArea"`
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	search := c.QueryParam("search")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	services, err := h.serviceUseCase.ListServices(c.Request().Context(), search, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, services)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	id := c.Param("id")

	service, err := h.serviceUseCase.GetServiceByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, service)
}

func (h *ServiceHandler) AddService(c echo.Context) error {
	var service entity.Service
	if err := c.Bind(&service); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.serviceUseCase.AddService(c.Request().Context(), &service)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// ListProviderServices serves a provider's own listings; the session identity
// must match the email in the path.
func (h *ServiceHandler) ListProviderServices(c echo.Context) error {
	email := c.Param("email")

	sessionEmail, _ := c.Get(middleware.ContextEmailKey).(string)
	if sessionEmail != email {
		return response.Error(c, errors.Forbidden("Forbidden access", nil))
	}

	services, err := h.serviceUseCase.ListServicesByProvider(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, services)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	id := c.Param("id")

	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.serviceUseCase.UpdateService(c.Request().Context(), id, entity.ServiceFields{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		ServiceArea: req.ServiceArea,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	id := c.Param("id")

	result, err := h.serviceUseCase.DeleteService(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
