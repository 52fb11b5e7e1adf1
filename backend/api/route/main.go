package route

import (
	"pack-panel/backend/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetRouter(route *gin.Engine) {
	route.Use(middleware.RequestLogger())
	route.Use(middleware.CORS())
	route.Use(middleware.LangMiddleware())

	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	SetApiRouter(route)
}
