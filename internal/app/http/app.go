package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "art_academy/docs"
	appjwt "art_academy/internal/lib/jwt"
	"art_academy/internal/lib/validate"
	appmiddleware "art_academy/internal/middleware"
	httprouters "art_academy/internal/transport/http"
	"art_academy/internal/transport/http/dto/response"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Options struct {
	Host          string
	Port          string
	TokenSecret   string
	SessionSecret string
	// UploadsDir is served under /uploads when set (local object storage).
	UploadsDir string
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &CustomValidator{validator: validate.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: false,
	}))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(opts.SessionSecret))))
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		opts:    opts,
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("port", s.opts.Port))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// adminOnlyMiddleware accepts either an admin cookie session or a bearer token.
func (s *Server) adminOnlyMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.opts.TokenSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(appjwt.Claims)
		},
		Skipper: httprouters.HasAdminSession,
		SuccessHandler: func(c echo.Context) {
			c.Set("admin", true)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
		},
	})
}

// requireAdminRole rejects tokens that verify but were not issued for the admin.
func requireAdminRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			// authenticated by session
			return next(c)
		}

		claims, ok := token.Claims.(*appjwt.Claims)
		if !ok || claims.Role != appjwt.AdminRole {
			return c.JSON(http.StatusForbidden, response.ErrorResponseWithDetails(response.CodeUnauthorized, "admin access required"))
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if s.opts.UploadsDir != "" {
		s.e.Static("/uploads", s.opts.UploadsDir)
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api/v1")
	{
		api.GET("/site", s.routers.GetSite)
		api.GET("/techniques", s.routers.ListTechniques)
		api.GET("/techniques/:id", s.routers.GetTechnique)
		api.GET("/links/chat", s.routers.ChatLink)

		api.POST("/admin/login", s.routers.Login)

		admin := api.Group("/admin", s.adminOnlyMiddleware(), requireAdminRole)
		{
			admin.POST("/logout", s.routers.Logout)

			admin.GET("/config", s.routers.GetConfig)
			admin.PUT("/config", s.routers.SaveConfig)
			admin.DELETE("/config", s.routers.ResetConfig)

			admin.POST("/uploads", s.routers.UploadImage)
			admin.DELETE("/uploads", s.routers.DeleteUpload)

			admin.GET("/settings/:key", s.routers.GetSetting)
			admin.PUT("/settings/:key", s.routers.PutSetting)

			admin.POST("/refresh", s.routers.RefreshContent)

			mount(admin.Group("/gallery"), s.routers.Gallery)
			mount(admin.Group("/courses"), s.routers.Courses)
			mount(admin.Group("/instructors"), s.routers.Instructors)
			mount(admin.Group("/techniques"), s.routers.Techniques)
		}
	}
}

func mount[T, P any](g *echo.Group, h *httprouters.Collection[T, P]) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
