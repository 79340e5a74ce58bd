package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler serves the address book of the logged-in user.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

func (h *AddressHandler) List(c echo.Context) error {
	addresses, err := h.uc.ListAddresses(c.Request().Context(), bearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

func (h *AddressHandler) Create(c echo.Context) error {
	var input entity.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), input, bearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

func (h *AddressHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Address id must be a positive number")
	}
	var patch entity.AddressPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), id, patch, bearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

func (h *AddressHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Address id must be a positive number")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), id, bearerToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
