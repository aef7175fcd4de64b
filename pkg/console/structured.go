package console

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// StructuredConsole implements types.ConsoleInterface on top of zap, for
// environments where output goes to a log stream instead of a terminal.
type StructuredConsole struct {
	logger *zap.Logger
}

// NewLogger builds a JSON production logger at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func parseLevel(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "warning":
		return zapcore.WarnLevel
	case "":
		return zapcore.InfoLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// NewStructuredConsole wraps logger.
func NewStructuredConsole(logger *zap.Logger) *StructuredConsole {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StructuredConsole{logger: logger}
}

// With returns a console whose log lines carry the given fields.
func (c *StructuredConsole) With(fields ...zap.Field) *StructuredConsole {
	return &StructuredConsole{logger: c.logger.With(fields...)}
}

// Logger exposes the underlying zap logger.
func (c *StructuredConsole) Logger() *zap.Logger {
	return c.logger
}

func (c *StructuredConsole) Print(a ...interface{}) {
	c.logger.Info(fmt.Sprint(a...))
}

func (c *StructuredConsole) Printf(format string, a ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, a...))
}

func (c *StructuredConsole) Println(a ...interface{}) {
	c.logger.Info(strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

func (c *StructuredConsole) LogInfo(format string, a ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, a...))
}

func (c *StructuredConsole) LogWarning(format string, a ...interface{}) {
	c.logger.Warn(fmt.Sprintf(format, a...))
}

func (c *StructuredConsole) LogError(format string, a ...interface{}) {
	c.logger.Error(fmt.Sprintf(format, a...))
}

func (c *StructuredConsole) LogSuccess(format string, a ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, a...), zap.String("outcome", "success"))
}

// Status logs the status message at debug level; there is no spinner.
func (c *StructuredConsole) Status(message string) types.StatusHandle {
	c.logger.Debug(message)
	return &logStatusHandle{logger: c.logger}
}

func (c *StructuredConsole) CreateTable() types.TableInterface {
	return NewTable()
}

type logStatusHandle struct {
	logger *zap.Logger
}

func (h *logStatusHandle) Update(message string) {
	h.logger.Debug(message)
}

func (h *logStatusHandle) Stop() {}
