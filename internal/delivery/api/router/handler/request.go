package handler

import (
	"strconv"

	deliverycontext "allergo/internal/delivery/context"
	"allergo/internal/domain/entity"
	domainerrors "allergo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate binds the request into req and runs the struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return domainerrors.ErrValidationFailed.WrapMessage("malformed request")
		}

		return errors.WithStack(err)
	}

	return errors.WithStack(c.Validate(req))
}

// identity returns the caller of a strictly authenticated route.
func identity(c echo.Context) (*entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrMissingToken
	}

	return id, nil
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, domainerrors.NewFieldError(name, name+" must be a positive integer")
	}

	return id, nil
}
