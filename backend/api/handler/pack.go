package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"pack-panel/backend/common"
	"pack-panel/backend/common/i18n"
	"pack-panel/backend/model"
	"pack-panel/backend/service"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 50

type createPackPayload struct {
	OptionID    int64  `json:"option_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,max=191"`
	Version     string `json:"version" binding:"max=191"`
	Description string `json:"description"`
	Selectable  bool   `json:"selectable"`
	Visible     bool   `json:"visible"`
	Locked      bool   `json:"locked"`
}

// packUpdateColumns are the pack columns a client may change through PUT.
var packUpdateColumns = map[string]func(any) (any, bool){
	"name":        asString,
	"version":     asString,
	"description": asString,
	"option_id":   asID,
	"selectable":  asBool,
	"visible":     asBool,
	"locked":      asBool,
}

func asString(v any) (any, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (any, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asID accepts JSON numbers holding a whole, positive value.
func asID(v any) (any, bool) {
	f, ok := v.(float64)
	if !ok || f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func GetPacks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("p", "0"))
	if page < 0 {
		page = 0
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	packs, err := model.Packs.List(requestContext(c), page*pageSize, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, packs)
}

func GetPack(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pack, err := model.Packs.FindByID(requestContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, pack)
}

func CreatePack(c *gin.Context) {
	var payload createPackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	svc := service.NewPackCreationService(model.Packs, model.ServiceOptions)
	pack, err := svc.Handle(requestContext(c), service.PackData{
		OptionID:    payload.OptionID,
		Name:        payload.Name,
		Version:     payload.Version,
		Description: payload.Description,
		Selectable:  payload.Selectable,
		Visible:     payload.Visible,
		Locked:      payload.Locked,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, pack)
}

// UpdatePack applies a partial update. Flags left out of the body are reset to false.
func UpdatePack(c *gin.Context) {
	lang := c.GetString("lang")
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	changes := make(map[string]any, len(body))
	for key, raw := range body {
		convert, known := packUpdateColumns[key]
		if !known {
			common.RespErrorStr(c, http.StatusBadRequest, i18n.InvalidParamError(lang, key).Error())
			return
		}
		value, valid := convert(raw)
		if !valid {
			common.RespErrorStr(c, http.StatusBadRequest, i18n.InvalidParamError(lang, key).Error())
			return
		}
		changes[key] = value
	}

	ctx := requestContext(c)
	if optionID, ok := changes["option_id"].(int64); ok {
		if _, err := model.ServiceOptions.FindByID(ctx, optionID); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	svc := service.NewPackUpdateService(model.Packs, model.Servers)
	rows, err := svc.Handle(ctx, service.PackByID(id), changes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccessWithMsg(c, fmt.Sprintf("%d pack(s) updated", rows), gin.H{"rows": rows})
}

func DeletePack(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	svc := service.NewPackDeletionService(model.Packs, model.Servers)
	rows, err := svc.Handle(requestContext(c), service.PackByID(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, gin.H{"rows": rows})
}

func GetPackServers(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	ctx := requestContext(c)
	if _, err := model.Packs.FindByID(ctx, id, "id"); err != nil {
		respondServiceError(c, err)
		return
	}
	servers, err := model.Servers.ListWhere(ctx, model.Where("pack_id", "=", id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.RespSuccess(c, servers)
}
