package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"k8s.io/klog/v2"

	"trendline/internal/domain"
)

// Server routes HTTP requests to the trendline service.
type Server struct {
	svc    domain.TrendlineService
	images domain.ImageStore
	echo   *echo.Echo
}

// New builds the router. images is used to read back rendered plots.
func New(svc domain.TrendlineService, images domain.ImageStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handleError

	s := &Server{svc: svc, images: images, echo: e}

	e.Use(accessLog)
	e.Use(middleware.Recover())

	e.GET("/say_hi/", s.sayHi)
	e.GET("/say_hello/:name", s.sayHello)
	e.POST("/fit_trendline/", s.fitTrendline)
	e.GET("/country_trendline/:country", s.countryTrendline)
	e.GET("/country_image/:country", s.countryImage)
	e.GET("/countries", s.countries)
	e.GET("/healthz", s.healthz)

	return s
}

// Handler returns the router wrapped with response compression.
func (s *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(s.echo)
}

// accessLog logs one line per request once the response is final.
func accessLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		req, res := c.Request(), c.Response()
		klog.InfoS("http request",
			"method", req.Method,
			"path", req.URL.Path,
			"remote", c.RealIP(),
			"status", res.Status,
			"bytes", res.Size,
			"duration", time.Since(start))
		return nil
	}
}

// handleError renders router and handler errors as {"detail": ...}.
func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var msg any = err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = he.Message
	}
	if code >= http.StatusInternalServerError {
		klog.ErrorS(err, "request failed", "path", c.Request().URL.Path)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]any{"detail": msg})
}
