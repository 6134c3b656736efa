package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (suite *LoggerTestSuite) TestNewLogger() {
	logger, err := NewLogger()
	suite.NoError(err)
	suite.NotNil(logger.Logger)
	suite.True(logger.Core().Enabled(zapcore.InfoLevel))
	suite.False(logger.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestNewLoggerWithLevel() {
	logger, err := NewLoggerWithLevel("debug")
	suite.NoError(err)
	suite.True(logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLoggerWithLevel("chatty")
	suite.Error(err)
}

func (suite *LoggerTestSuite) TestSyncNilLogger() {
	logger := &Logger{Logger: nil}
	suite.NoError(logger.Sync())
}

func (suite *LoggerTestSuite) TestNopLogger() {
	logger := NewNopLogger()
	logger.Warn("dropped")
	suite.NoError(logger.Sync())
}

func (suite *LoggerTestSuite) TestWrapCore() {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := New(zap.New(core))

	logger.Info("enriched series", zap.Int("bars", 200))

	suite.Equal(1, logs.Len())
	entry := logs.All()[0]
	suite.Equal("enriched series", entry.Message)
	suite.Equal(int64(200), entry.ContextMap()["bars"])
}
