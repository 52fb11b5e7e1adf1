package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pack-panel/backend/common"
	codes "pack-panel/backend/common/errors"
	"pack-panel/backend/common/i18n"
	"pack-panel/backend/model"
	"pack-panel/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// requestContext carries the request language to services even when LangMiddleware did not run.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if lang := c.GetString("lang"); lang != "" {
		ctx = i18n.WithLang(ctx, lang)
	}
	return ctx
}

func parseIDParam(c *gin.Context) (int64, bool) {
	lang := c.GetString("lang")
	raw := c.Param("id")
	if raw == "" {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(codes.ErrEmptyID, lang))
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.InvalidParamError(lang, "id").Error())
		return 0, false
	}
	return id, true
}

// respondBindError turns binding failures into a translated 400, naming the offending fields.
func respondBindError(c *gin.Context, err error) {
	lang := c.GetString("lang")
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
		}
		common.RespErrorStr(c, http.StatusBadRequest, i18n.InvalidParamError(lang, strings.Join(fields, ", ")).Error())
		return
	}
	common.RespError(c, http.StatusBadRequest, i18n.InvalidParamError(lang, "body").Error(), err)
}

// respondServiceError maps service and store errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	lang := c.GetString("lang")
	switch {
	case errors.Is(err, service.ErrHasActiveServers):
		common.RespErrorStr(c, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrPackNotFound):
		common.RespErrorStr(c, http.StatusNotFound, i18n.Translate(codes.ErrPackNotFound, lang))
	case errors.Is(err, model.ErrServiceOptionNotFound):
		common.RespErrorStr(c, http.StatusNotFound, i18n.Translate(codes.ErrServiceOptionNotFound, lang))
	default:
		common.Logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		common.RespErrorStr(c, http.StatusInternalServerError, i18n.InternalServerError(lang).Error())
	}
}
