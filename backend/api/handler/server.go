package handler

import (
	"pack-panel/backend/common"
	"pack-panel/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type serverPayload struct {
	Name     string `json:"name" binding:"required,max=191"`
	OptionID int64  `json:"option_id" binding:"required,gt=0"`
	PackID   *int64 `json:"pack_id" binding:"omitempty,gt=0"`
}

// CreateServer registers a server record and, optionally, the pack it runs.
func CreateServer(c *gin.Context) {
	var payload serverPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := requestContext(c)
	if _, err := model.ServiceOptions.FindByID(ctx, payload.OptionID); err != nil {
		respondServiceError(c, err)
		return
	}
	if payload.PackID != nil {
		if _, err := model.Packs.FindByID(ctx, *payload.PackID, "id"); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	server := &model.Server{
		UUID:     uuid.NewString(),
		Name:     payload.Name,
		OptionID: payload.OptionID,
		PackID:   payload.PackID,
	}
	if err := model.Servers.Create(ctx, server); err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, server)
}
