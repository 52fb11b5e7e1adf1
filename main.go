package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"pack-panel/backend/api/route"
	"pack-panel/backend/common"
	"pack-panel/backend/model"

	"github.com/gin-gonic/gin"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	if err := common.SetupLogger(); err != nil {
		common.FatalLog(err)
	}
	common.SetupGinLog()
	common.SysLog("Pack Panel " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := common.LoadConfig(ctx); err != nil {
		common.FatalLog(err)
	}
	// Initialize Redis
	if err := common.InitRedisClient(); err != nil {
		common.SysError("Redis unavailable, pack cache disabled: " + err.Error())
	}
	// Initialize SQL Database
	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
	}()

	server := gin.New()
	server.Use(gin.Recovery())
	route.SetRouter(server)
	server.NoRoute(func(c *gin.Context) {
		common.RespErrorStr(c, http.StatusNotFound, "API route not found")
	})

	port := strconv.Itoa(*common.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		common.SysLog("Server listening on port: " + port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.FatalLog("failed to start server: " + err.Error())
		}
	}()

	<-ctx.Done()
	common.SysLog("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		common.SysError("Error shutting down server: " + err.Error())
	}
	if common.RDB != nil {
		_ = common.RDB.Close()
	}
}
