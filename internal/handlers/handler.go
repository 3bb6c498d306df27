package handlers

import (
	"net/http"

	"users_api"
	"users_api/internal/config"
	"users_api/internal/logger"
	"users_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cors     config.CORSConfig
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, cors config.CORSConfig) *Handler {
	return &Handler{services: services, log: log, cors: cors}
}

// InitRoutes builds the gin router and wraps it in the cross-origin policy.
// CORS sits outside gin so preflight requests never reach routing.
func (h *Handler) InitRoutes() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET(users_api.PathRoot, h.root)
	h.registerAPIRoutes(router)

	return h.withCORS(router)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	r.GET(users_api.PathHealth, h.health)

	users := r.Group(users_api.PathUsers)
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
	}
}
