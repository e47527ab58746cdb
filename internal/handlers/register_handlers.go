package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sdbuildbox/building_management_app/cmd/docs"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	authGuard := middleware.AuthMiddleware(cfg.JWTSecret)

	registerAuthRoutes(r, cfg, services.Token, newTokenRateLimit())
	registerUserRoutes(r, services.User)
	registerApartmentRoutes(r, services.Apartment)
	registerAgreementRoutes(r, services.Agreement, authGuard)
	registerCouponRoutes(r, services.Coupon, authGuard)
	registerAnnouncementRoutes(r, services.Announcement)
	registerPaymentRoutes(r, services.Payment)

	setupSwaggerRoutes(r, cfg)
}

// newTokenRateLimit builds the per-IP rate limit applied to the token issue
// route: 10 requests per minute from in-memory state.
func newTokenRateLimit() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// registerCustomValidators installs the domain enum tags used by the binding
// layer, so malformed statuses and roles fail at request binding with a 400.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
		return domain.BookingStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("agreementstatus", func(fl validator.FieldLevel) bool {
		return domain.AgreementStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("billstatus", func(fl validator.FieldLevel) bool {
		return domain.BillStatus(fl.Field().String()).IsValid()
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
