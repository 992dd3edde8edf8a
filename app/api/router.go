package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"PacsApp/app/config"
	"PacsApp/app/services"
	"PacsApp/app/websocket"
)

// Server wires the HTTP routes to the service layer.
type Server struct {
	farmers  *services.FarmerService
	orders   *services.OrderService
	receipts *services.ReceiptService
	reports  *services.ReportService
	hub      *websocket.Hub
	log      *logrus.Logger
	loc      *time.Location
}

func NewServer(
	farmers *services.FarmerService,
	orders *services.OrderService,
	receipts *services.ReceiptService,
	reports *services.ReportService,
	hub *websocket.Hub,
	log *logrus.Logger,
	loc *time.Location,
) *Server {
	return &Server{
		farmers:  farmers,
		orders:   orders,
		receipts: receipts,
		reports:  reports,
		hub:      hub,
		log:      log,
		loc:      loc,
	}
}

// Router builds the gin engine with middleware and all routes.
func (s *Server) Router(cfg *config.Config) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))
	r.Use(CORS(cfg.HTTP.CORSOrigins))
	r.Use(RateLimiter(cfg.HTTP.RateLimitRPS))

	r.GET("/api/health", s.health)
	r.GET("/ws", func(c *gin.Context) {
		s.hub.ServeWS(c.Writer, c.Request)
	})

	farmers := r.Group("/api")
	{
		farmers.POST("/farmer", s.registerFarmer)
		farmers.GET("/farmer/:aadhaar", s.getFarmer)
		farmers.GET("/farmer/:aadhaar/orders", s.farmerOrders)
		farmers.GET("/farmers", s.listFarmers)
	}

	orders := r.Group("/api")
	{
		orders.POST("/order", s.createOrder)
		orders.GET("/orders", s.listOrders)
		orders.GET("/orders/:id", s.getOrder)
		orders.POST("/orders/:id/print", s.printReceipt)
		orders.GET("/orders/:id/preview", s.previewReceipt)
	}

	printerGroup := r.Group("/api/printer")
	{
		printerGroup.GET("/status", s.printerStatus)
		printerGroup.GET("/styles", s.listStyles)
		printerGroup.POST("/test", s.printTestPage)
	}

	reports := r.Group("/api/reports")
	{
		reports.GET("/daily", s.dailyReport)
		reports.POST("/daily/print", s.printDailyReport)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	status := s.receipts.Status(c.Request.Context())
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: gin.H{
			"status":     "ok",
			"time":       time.Now().In(s.loc),
			"printer":    status,
			"ws_clients": s.hub.ClientCount(),
		},
	})
}
