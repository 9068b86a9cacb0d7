package apiclient_test

import (
	"testing"

	"biblioteca/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}
