package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewOpenAPIValidationMiddleware loads the OpenAPI document at specPath and
// returns an echo middleware that rejects requests not matching it with a
// validation error. Requests for paths outside the document (health,
// swagger UI) pass through unvalidated.
func NewOpenAPIValidationMiddleware(specPath string) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(specPath)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return newValidationMiddleware(router), nil
}

func newValidationMiddleware(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			request := ctx.Request()

			route, pathParams, err := router.FindRoute(request)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    request,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(request.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    "validation_error",
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}
}
