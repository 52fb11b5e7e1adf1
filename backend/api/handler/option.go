package handler

import (
	"pack-panel/backend/common"
	"pack-panel/backend/model"

	"github.com/gin-gonic/gin"
)

type serviceOptionPayload struct {
	Name        string `json:"name" binding:"required,max=191"`
	Description string `json:"description"`
}

func GetServiceOptions(c *gin.Context) {
	options, err := model.ServiceOptions.List(requestContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, options)
}

func CreateServiceOption(c *gin.Context) {
	var payload serviceOptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	option := &model.ServiceOption{Name: payload.Name, Description: payload.Description}
	if err := model.ServiceOptions.Create(requestContext(c), option); err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, option)
}
