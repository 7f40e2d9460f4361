package http

import (
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func pathID(c echo.Context) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// intParam reads an optional form-style query parameter, keeping fallback
// when it is absent.
func intParam(c echo.Context, name string, fallback int) (int, error) {
	value := fallback
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return 0, err
	}
	return value, nil
}
