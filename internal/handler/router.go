package handler

import (
	"net/http"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/handler/api"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Session    *api.SessionHandler
	Guard      *api.GuardHandler
	SiteConfig *api.SiteConfigHandler
	Room       *api.RoomHandler
	Booking    *api.BookingHandler
	Activity   *api.ActivityHandler
	CheckIn    *api.CheckInHandler
	MyRoom     *api.MyRoomHandler
	Cleaning   *api.CleaningHandler
	Staff      *api.StaffHandler
	Guest      *api.GuestHandler
	Employee   *api.EmployeeHandler
}

var (
	loggedIn    = access.Requirement{}
	checkInOpen = access.Requirement{Module: uiconfig.ModuleDigitalCheckIn}
	activityOn  = access.Requirement{Module: uiconfig.ModuleActivities}
	cleanerOnly = access.Requirement{CleanerOnly: true, Module: uiconfig.ModuleRoomCleaning}
	adminOnly   = access.Requirement{AdminOnly: true}
)

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, registry *prometheus.Registry, authMiddleware *middleware.AuthMiddleware, h Handlers) {
	setupMiddleware(engine, cfg, logger, authMiddleware)
	setupRoutes(engine, registry, authMiddleware, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authMiddleware *middleware.AuthMiddleware) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	// the session is loaded before logging completes so the access log can name the user
	engine.Use(authMiddleware.LoadSession())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, authMiddleware *middleware.AuthMiddleware, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/session/login", Handler: h.Session.Login},
			{Method: http.MethodPost, Path: "/session/signup", Handler: h.Session.SignUp},
			{Method: http.MethodPost, Path: "/session/logout", Handler: h.Session.Logout},
			{Method: http.MethodGet, Path: "/session", Handler: h.Session.Current},
			{Method: http.MethodGet, Path: "/guard", Handler: h.Guard.Decide},
			{Method: http.MethodGet, Path: "/homepage", Handler: h.SiteConfig.Homepage},
			{Method: http.MethodGet, Path: "/modules", Handler: h.Guard.Modules},

			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.Search},
			{Method: http.MethodGet, Path: "/rooms/:id", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/rooms/:id/quote", Handler: h.Room.Quote},

			{Method: http.MethodGet, Path: "/activities", Handler: h.Activity.List},
			{Method: http.MethodGet, Path: "/activities/recommended", Handler: h.Activity.Recommended},
			{Method: http.MethodGet, Path: "/activities/:id", Handler: h.Activity.Get},
			{Method: http.MethodGet, Path: "/activities/:id/slots", Handler: h.Activity.Slots},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.Require(loggedIn))
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/mine", Handler: h.Booking.Mine},
			{Method: http.MethodDelete, Path: "/bookings/mine/:id", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/bookings/:id/payment-return", Handler: h.Booking.PaymentReturn},
			{Method: http.MethodGet, Path: "/bookings/mine/:id/pdf/:type", Handler: h.Booking.Document},
			{Method: http.MethodGet, Path: "/bookings/mine/:id/pass.png", Handler: h.Booking.Pass},
			{Method: http.MethodPost, Path: "/check-out", Handler: h.Booking.CheckOut},

			{Method: http.MethodPost, Path: "/activities/:id/bookings", Handler: h.Activity.Book, Mw: []gin.HandlerFunc{authMiddleware.Require(activityOn)}},
			{Method: http.MethodGet, Path: "/activity-bookings/mine", Handler: h.Activity.Mine, Mw: []gin.HandlerFunc{authMiddleware.Require(activityOn)}},
			{Method: http.MethodPost, Path: "/activity-bookings/:id/payment-return", Handler: h.Activity.PaymentReturn},

			{Method: http.MethodGet, Path: "/my-room", Handler: h.MyRoom.View},
			{Method: http.MethodPost, Path: "/my-room/:roomId/cleaning", Handler: h.MyRoom.Schedule},
			{Method: http.MethodPost, Path: "/my-room/:roomId/invite", Handler: h.MyRoom.Invite},
			{Method: http.MethodPost, Path: "/my-room/:roomId/check-out", Handler: h.MyRoom.CheckOut},
			{Method: http.MethodPost, Path: "/my-room/:roomId/unlock", Handler: h.MyRoom.Unlock},
		})

		checkIn := apiGroup.Group("")
		checkIn.Use(authMiddleware.Require(checkInOpen))
		addRoutes(checkIn, []route{
			{Method: http.MethodGet, Path: "/check-in/:id", Handler: h.CheckIn.SelfForm},
			{Method: http.MethodPost, Path: "/check-in/:id", Handler: h.CheckIn.SelfSubmit},
			{Method: http.MethodGet, Path: "/add-to-room/:email/:ownerEmail/:isManual/:id", Handler: h.CheckIn.AddToRoomForm},
			{Method: http.MethodPost, Path: "/add-to-room/:email/:ownerEmail/:isManual/:id", Handler: h.CheckIn.AddToRoomSubmit},
		})

		cleaning := apiGroup.Group("/room-cleaning")
		cleaning.Use(authMiddleware.Require(cleanerOnly))
		addRoutes(cleaning, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cleaning.Board},
			{Method: http.MethodPost, Path: "/:id/start", Handler: h.Cleaning.Start},
			{Method: http.MethodPost, Path: "/:id/finish", Handler: h.Cleaning.Finish},
		})

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.Require(adminOnly))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/manual-check-in/:email/:id", Handler: h.CheckIn.ManualForm, Mw: []gin.HandlerFunc{authMiddleware.Require(checkInOpen)}},
			{Method: http.MethodPost, Path: "/manual-check-in/:email/:id", Handler: h.CheckIn.ManualSubmit, Mw: []gin.HandlerFunc{authMiddleware.Require(checkInOpen)}},

			{Method: http.MethodGet, Path: "/manager/bookings", Handler: h.Booking.Manager},
			{Method: http.MethodPut, Path: "/manager/bookings/:id/paid", Handler: h.Booking.MarkPaid},
			{Method: http.MethodPost, Path: "/manager/bookings/:id/check-out", Handler: h.Staff.CheckOut},
			{Method: http.MethodGet, Path: "/manager/rooms", Handler: h.Room.AdminSearch},
			{Method: http.MethodGet, Path: "/manager/rooms/:id/guests", Handler: h.Staff.Guests},
			{Method: http.MethodDelete, Path: "/manager/rooms/:id/guests/:email", Handler: h.Staff.RemoveGuest},
			{Method: http.MethodGet, Path: "/manager/documents/:bookingId/:email", Handler: h.Staff.Passport},

			{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.Create},
			{Method: http.MethodPut, Path: "/rooms/:id", Handler: h.Room.Update},
			{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Room.Delete},

			{Method: http.MethodPost, Path: "/activities", Handler: h.Activity.Create},
			{Method: http.MethodPut, Path: "/activities/:id", Handler: h.Activity.Update},
			{Method: http.MethodDelete, Path: "/activities/:id", Handler: h.Activity.Delete},

			{Method: http.MethodGet, Path: "/guests", Handler: h.Guest.List},
			{Method: http.MethodGet, Path: "/guests/search", Handler: h.Guest.List},
			{Method: http.MethodGet, Path: "/guests/:email", Handler: h.Guest.Get},
			{Method: http.MethodPost, Path: "/guests", Handler: h.Guest.Create},
			{Method: http.MethodPut, Path: "/guests/:email", Handler: h.Guest.Update},
			{Method: http.MethodDelete, Path: "/guests/:email", Handler: h.Guest.Delete},

			{Method: http.MethodGet, Path: "/employees", Handler: h.Employee.List},
			{Method: http.MethodGet, Path: "/employees/:id", Handler: h.Employee.Get},
			{Method: http.MethodPost, Path: "/employees", Handler: h.Employee.Create},
			{Method: http.MethodPut, Path: "/employees/:id", Handler: h.Employee.Update},
			{Method: http.MethodDelete, Path: "/employees/:id", Handler: h.Employee.Delete},

			{Method: http.MethodGet, Path: "/ui-config", Handler: h.SiteConfig.Get},
			{Method: http.MethodPut, Path: "/ui-config", Handler: h.SiteConfig.Update},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
