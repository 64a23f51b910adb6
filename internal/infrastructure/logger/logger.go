package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"orderhub/internal/config"
)

const (
	serviceName   = "orderhub"
	formatConsole = "console"
)

// New builds a production logger. An unknown level falls back to info and
// any format other than console yields JSON.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.InitialFields = map[string]interface{}{"service": serviceName}

	if cfg.Format == formatConsole {
		zcfg.Encoding = formatConsole
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zcfg.Build()
}
