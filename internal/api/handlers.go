package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"k8s.io/klog/v2"

	"trendline/internal/digest"
	"trendline/internal/domain"
	"trendline/internal/regression"
)

func (s *Server) sayHi(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"Hi": "There"})
}

func (s *Server) sayHello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"Hello": pathParam(c, "name")})
}

func (s *Server) fitTrendline(c echo.Context) error {
	var req FitRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Detail: ValidationErrors{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error.jsondecode"}},
		})
	}
	if err := req.Validate(); err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: verrs})
		}
		return err
	}

	t, err := s.svc.Fit(c.Request().Context(), req.Timestamps, req.Data)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Detail: ValidationErrors{fieldError("", err.Error())},
		})
	}
	return c.JSON(http.StatusOK, FitResponse{Slope: t.Slope, RSquared: t.RSquared})
}

func (s *Server) countryTrendline(c echo.Context) error {
	t, err := s.svc.CountryTrendline(c.Request().Context(), pathParam(c, "country"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) countryImage(c echo.Context) error {
	ctx := c.Request().Context()
	path, err := s.svc.RenderPlot(ctx, pathParam(c, "country"))
	if err != nil {
		return errorJSON(c, err)
	}
	b, err := s.images.OpenImage(path)
	if err != nil {
		return errorJSON(c, err)
	}

	etag := digest.ETag(b)
	h := c.Response().Header()
	h.Set("Cache-Control", "no-cache")
	h.Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, "image/png", b)
}

func (s *Server) countries(c echo.Context) error {
	list, err := s.svc.Countries(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// errorJSON writes the generic {"error": ...} payload with a status derived
// from err.
func errorJSON(c echo.Context, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		klog.ErrorS(err, "request failed", "path", c.Request().URL.Path)
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCountryNotFound), errors.Is(err, domain.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, regression.ErrTooFewPoints),
		errors.Is(err, regression.ErrConstantX),
		errors.Is(err, regression.ErrLengthMismatch),
		errors.Is(err, regression.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// pathParam returns the unescaped path parameter. Echo matches on the raw
// path when the URL carries escapes that Path cannot represent.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
