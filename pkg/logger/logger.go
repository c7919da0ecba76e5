package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Manav2209/s30-assignment-4/config"
)

// appName 每条日志附带的 app 字段
const appName = "slotbook"

// NewLogger 根据配置初始化 Zap 日志实例，输出到 stdout
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return newLogger(cfg, zapcore.Lock(os.Stdout))
}

// newLogger 构建写入 ws 的日志器
//   - json: ISO8601 时间字段 ts，同一秒内相同消息超过 100 条后按 1/100 采样
//   - console: 彩色级别，不采样，便于本地调试
//
// Error 及以上级别附带调用栈
func newLogger(cfg *config.LogConfig, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	var core zapcore.Core
	switch cfg.Format {
	case "console":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	case "json", "":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "ts"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewSamplerWithOptions(
			zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, level),
			time.Second, 100, 100,
		)
	default:
		return nil, fmt.Errorf("无效的日志格式 %q", cfg.Format)
	}

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
	).With(zap.String("app", appName)), nil
}
