package common

import (
	"flag"
	"fmt"
	"os"
	"time"
)

var Version = "v0.0.0"

var (
	Port          = flag.Int("port", 3000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
)

// Database and cache settings, overridable from config.ini and the environment.
var (
	SQLitePath      = "pack-panel.db"
	SQLDSN          = ""
	RedisConnString = ""
	RedisEnabled    = true
	PackCacheTTL    = 10 * time.Minute
)

// APIRateLimitPerMinute is the per-client request budget for /api routes.
var APIRateLimitPerMinute = 600

func PrintHelp() {
	fmt.Println("Pack Panel " + Version)
	fmt.Println("Usage: pack-panel [--port <port>] [--log-dir <log directory>] [--version] [--help]")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  SQL_DSN            mysql or postgres DSN, sqlite is used when empty")
	fmt.Println("  SQLITE_PATH        sqlite database file")
	fmt.Println("  REDIS_CONN_STRING  redis url for the pack cache")
	fmt.Println("  PACK_CACHE_TTL     pack cache lifetime, e.g. 10m")
	fmt.Println("  API_RATE_LIMIT     requests per minute per client")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}
