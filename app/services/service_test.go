package services

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"PacsApp/app/config"
	"PacsApp/app/database"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testLocation() *time.Location {
	return time.FixedZone("IST", int(5.5*3600))
}

// recordingHub captures broadcast events for assertions.
type recordingHub struct {
	events []string
}

func (h *recordingHub) Broadcast(eventType string, data interface{}) {
	h.events = append(h.events, eventType)
}
