package route

import (
	"pack-panel/backend/api/handler"
	"pack-panel/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	apiRouter.Use(middleware.GlobalAPIRateLimit())
	{
		packRoute := apiRouter.Group("/packs")
		{
			packRoute.GET("", handler.GetPacks)
			packRoute.POST("", handler.CreatePack)
			packRoute.GET("/:id", handler.GetPack)
			packRoute.PUT("/:id", handler.UpdatePack)
			packRoute.DELETE("/:id", handler.DeletePack)
			packRoute.GET("/:id/servers", handler.GetPackServers)
		}

		optionRoute := apiRouter.Group("/options")
		{
			optionRoute.GET("", handler.GetServiceOptions)
			optionRoute.POST("", handler.CreateServiceOption)
		}

		apiRouter.POST("/servers", handler.CreateServer)
	}
}
