package context

import (
	"allergo/internal/domain/constants"
	"allergo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo.Context key of the authorized caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity attaches the authorized caller to the request.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authorized caller, or false for an anonymous request.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}

// GetDeviceMeta reads the client device headers and the caller IP.
func GetDeviceMeta(c echo.Context) entity.DeviceMeta {
	header := c.Request().Header

	return entity.DeviceMeta{
		DeviceID:   header.Get(constants.HeaderDeviceID),
		DeviceName: header.Get(constants.HeaderDeviceName),
		IP:         c.RealIP(),
	}
}
