package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports stdout and file output
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:  logger,
		service: config.Service,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// InitAppLoggerFromConfig builds the logger from the application config
func InitAppLoggerFromConfig(configs *models.Config) (*AppLogger, error) {
	return NewAppLogger(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	})
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// GetFilePath returns the current log file path
func (al *AppLogger) GetFilePath() string {
	return al.filePath
}

func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields)+1)
	if al.service != "" {
		data["service"] = al.service
	}
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return al.Logger.WithFields(data)
}

// Info logs at info level with structured fields
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.entry(fields).Info(msg)
}

// Warn logs at warn level with structured fields
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.entry(fields).Warn(msg)
}

// Debug logs at debug level with structured fields
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.entry(fields).Debug(msg)
}

// Error logs at error level with structured fields
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.entry(fields).Error(msg)
}

// Fatal logs at fatal level and exits
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.entry(fields).Fatal(msg)
}

// LogHTTPRequest logs an HTTP request at a level chosen by its status code
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	fields := []Field{
		Int("status", statusCode),
		String("latency", latency.String()),
		Int64("latency_ms", latency.Milliseconds()),
		String("client_ip", clientIP),
		String("method", method),
		String("path", path),
		String("user_id", userID),
		String("request_id", requestID),
	}
	if err != nil {
		fields = append(fields, Err(err))
	}

	switch {
	case statusCode >= 500:
		al.Error("Server error", fields...)
	case statusCode >= 400:
		al.Warn("Client error", fields...)
	default:
		al.Info("Request processed", fields...)
	}
}
