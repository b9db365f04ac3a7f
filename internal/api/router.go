package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/unicampus/campus-portal/docs"
	"github.com/unicampus/campus-portal/internal/api/handler"
	"github.com/unicampus/campus-portal/internal/api/middleware"
	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
	"github.com/unicampus/campus-portal/internal/core/service"
)

// Deps is everything the router wires into handlers. Mongo and Redis are
// nil when the matching backend is not configured.
type Deps struct {
	Log       zerolog.Logger
	JWTSecret string
	Validator echo.Validator

	Store     *service.Store
	Auth      ports.AuthService
	Revoker   ports.TokenRevoker
	Directory ports.UserDirectory
	Search    ports.SearchService
	Live      ports.LiveSearch
	Dashboard ports.DashboardService

	Mongo   *mongo.Database
	Redis   *redis.Client
	Storage string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = d.Validator
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("campus"))

	// --- Health, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis, d.Storage)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authMW := middleware.Auth(d.JWTSecret, d.Revoker)
	v1 := e.Group("/v1")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout, authMW)
	v1.GET("/auth/me", authHandler.Me, authMW)
	v1.PUT("/auth/password", authHandler.ChangePassword, authMW)

	api := v1.Group("", authMW)

	// --- Record collections ---
	s := d.Store
	staffOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleFaculty)

	collection[domain.Complaint](api, "/complaints", s.Complaints)
	collection[domain.Booking](api, "/bookings", s.Bookings)
	collection[domain.StudyResource](api, "/resources", s.Resources)
	collection[domain.Event](api, "/events", s.Events)
	collection[domain.Notice](api, "/notices", s.Notices, staffOnly)
	collection[domain.LostFoundItem](api, "/lost-found", s.LostFound)
	collection[domain.Poll](api, "/polls", s.Polls, staffOnly)
	collection[domain.Hackathon](api, "/hackathons", s.Hackathons, staffOnly)
	collection[domain.JobApplication](api, "/applications", s.Applications)
	collection[domain.BorrowRequest](api, "/borrow-requests", s.BorrowRequests)
	collection[domain.CanteenOrder](api, "/orders", s.Orders)

	actionHandler := handler.NewActionHandler(s)
	api.POST("/complaints/:id/comments", actionHandler.AddComment)
	api.POST("/events/:id/register", actionHandler.RegisterForEvent)
	api.POST("/hackathons/:id/register", actionHandler.RegisterTeam)
	api.POST("/polls/:id/votes", actionHandler.Vote)

	// --- Search ---
	searchHandler := handler.NewSearchHandler(d.Search, d.Live)
	api.GET("/search", searchHandler.Search)
	api.PUT("/search/session", searchHandler.TypeQuery)
	api.GET("/search/session", searchHandler.Session)
	api.DELETE("/search/session", searchHandler.ClearSession)
	api.POST("/search/session/navigate", searchHandler.Navigate)

	// --- Dashboard ---
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	api.GET("/dashboard/stats", dashboardHandler.Stats)

	// --- Admin ---
	userHandler := handler.NewUserHandler(d.Directory, d.Log)
	admin := api.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", userHandler.List)
	admin.GET("/users/stream", userHandler.Stream)
	admin.DELETE("/users/:id", userHandler.Delete)

	return e
}

// collection registers the CRUD routes of one record kind. writeMW guards
// create and patch only; reads stay open to every signed-in user.
func collection[T domain.Record](g *echo.Group, path string, svc ports.RecordService[T], writeMW ...echo.MiddlewareFunc) {
	h := handler.NewRecordHandler(svc)
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.POST(path, h.Create, writeMW...)
	g.PATCH(path+"/:id", h.Patch, writeMW...)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
