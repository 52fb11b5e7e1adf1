package model

import (
	"fmt"
	"strings"
	"time"

	"pack-panel/backend/common"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Repositories used by the HTTP handlers, set up by InitDB.
var (
	Packs          *PackRepository
	Servers        *ServerRepository
	ServiceOptions *ServiceOptionRepository
)

func chooseDialector() gorm.Dialector {
	dsn := common.SQLDSN
	switch {
	case dsn == "":
		common.SysLog("SQL_DSN not set, using SQLite as database: " + common.SQLitePath)
		return sqlite.Open(common.SQLitePath)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		common.SysLog("Using PostgreSQL database")
		return postgres.Open(dsn)
	default:
		common.SysLog("Using MySQL database")
		return mysql.Open(dsn)
	}
}

func InitDB() (err error) {
	db, err := gorm.Open(chooseDialector(), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetMaxIdleConns(5)
	}

	if err = db.AutoMigrate(&ServiceOption{}, &Pack{}, &Server{}); err != nil {
		return fmt.Errorf("auto migrate database schema: %w", err)
	}

	DB = db
	var cache *PackCache
	if common.RedisEnabled && common.RDB != nil {
		cache = NewPackCache(common.RDB, common.PackCacheTTL)
	}
	Packs = NewPackRepository(db, cache)
	Servers = NewServerRepository(db)
	ServiceOptions = NewServiceOptionRepository(db)

	common.SysLog("Database initialized successfully.")
	return nil
}

func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("Closing database connection.")
	return sqlDB.Close()
}
