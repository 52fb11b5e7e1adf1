package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logger is the process-wide structured logger.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetupLogger points Logger at the console and, when --log-dir is set, at a log file too.
func SetupLogger() error {
	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	if *LogDir != "" {
		if err := os.MkdirAll(*LogDir, 0o755); err != nil {
			return fmt.Errorf("create log directory %s: %w", *LogDir, err)
		}
		logPath := filepath.Join(*LogDir, fmt.Sprintf("pack-panel-%s.log", time.Now().Format("20060102")))
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", logPath, err)
		}
		writers = append(writers, file)
	}
	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return nil
}

// SetupGinLog routes gin's own output through Logger.
func SetupGinLog() {
	gin.DefaultWriter = levelWriter{level: zerolog.InfoLevel}
	gin.DefaultErrorWriter = levelWriter{level: zerolog.ErrorLevel}
}

type levelWriter struct {
	level zerolog.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	Logger.WithLevel(w.level).Str("source", "gin").Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func SysLog(s string) {
	Logger.Info().Msg(s)
}

func SysError(s string) {
	Logger.Error().Msg(s)
}

func FatalLog(v ...any) {
	Logger.Fatal().Msg(fmt.Sprint(v...))
}
