package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/config"
	"github.com/Manav2209/s30-assignment-4/internal/api/handler"
	"github.com/Manav2209/s30-assignment-4/internal/api/middleware"
	"github.com/Manav2209/s30-assignment-4/internal/model"
	"github.com/Manav2209/s30-assignment-4/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时预约接口不限流
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	limiter middleware.RateLimiter,
	db *gorm.DB,
	logger *zap.Logger,
) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	provider := middleware.RoleAuth(model.RoleServiceProvider)

	// ── API v1（全部需要认证） ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		// 服务目录
		services := v1.Group("/services")
		{
			services.POST("", provider, h.Service.CreateService)
			services.GET("", h.Service.ListServices)
			services.GET("/:serviceId", h.Service.GetService)
			services.POST("/:serviceId/availability", provider, h.Availability.AddWindow)
			services.GET("/:serviceId/availability", h.Availability.ListWindows)
			services.GET("/:serviceId/slots", h.Slot.ListSlots)
		}

		// 预约
		appointments := v1.Group("/appointments")
		{
			appointments.POST("",
				middleware.RoleAuth(model.RoleUser),
				middleware.RateLimit(limiter, cfg.Booking.RateLimit, cfg.Booking.RateWindow, logger),
				h.Appointment.Book,
			)
			appointments.GET("/me", h.Appointment.ListMine)
			appointments.GET("/me/calendar.ics", h.Appointment.ExportCalendar)
		}

		// 提供者日程
		providers := v1.Group("/providers/me", provider)
		{
			providers.GET("/schedule", h.Provider.GetSchedule)
			providers.GET("/schedule/export", h.Provider.ExportSchedule)
		}
	}

	return r, nil
}
