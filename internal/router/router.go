package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"deal-pipeline-api/internal/config"
	"deal-pipeline-api/internal/handler"
	"deal-pipeline-api/internal/metrics"
	"deal-pipeline-api/internal/middleware"
	"deal-pipeline-api/internal/service"
	"deal-pipeline-api/internal/store"
	"deal-pipeline-api/internal/ws"
)

// Deps carries everything the router needs wired in
type Deps struct {
	Config        *config.Config
	Store         *store.Store
	DealService   service.DealService
	KanbanService service.KanbanService
	Hub           *ws.Hub
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
}

// Setup builds the gin engine with all routes and middleware
func Setup(d Deps) *gin.Engine {
	if d.Config.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(d.Metrics))

	dealHandler := handler.NewDealHandler(d.DealService, d.KanbanService, d.Store)
	viewHandler := handler.NewViewHandler(d.Store)
	authHandler := handler.NewAuthHandler(
		d.Store,
		d.Config.Auth.SecretKey,
		time.Duration(d.Config.Auth.TokenTTLMn)*time.Minute,
		d.Logger,
	)
	healthHandler := handler.NewHealthHandler(d.Store)

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(d.Config.Server.BasePath)
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		if d.Hub != nil {
			api.GET("/ws", d.Hub.HandleWebSocket)
		}

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(d.Config.Auth.SecretKey))
		{
			authenticated.GET("/deals", dealHandler.ListDeals)
			authenticated.POST("/deals", dealHandler.CreateDeal)
			authenticated.GET("/deals/board", dealHandler.GetBoard)
			authenticated.GET("/deals/stats", dealHandler.GetStats)
			authenticated.PUT("/deals/:id", dealHandler.UpdateDeal)
			authenticated.DELETE("/deals/:id", dealHandler.DeleteDeal)
			authenticated.POST("/deals/:id/move", dealHandler.MoveDeal)
			authenticated.POST("/refresh", dealHandler.Refresh)

			authenticated.GET("/products", dealHandler.ListProducts)
			authenticated.GET("/clients", dealHandler.ListClients)

			authenticated.GET("/preferences", viewHandler.GetPreferences)
			authenticated.PATCH("/preferences", viewHandler.UpdatePreferences)
			authenticated.PUT("/view", viewHandler.SetView)
		}
	}

	return r
}
