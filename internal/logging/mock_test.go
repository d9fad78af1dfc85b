package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	logger := &MockLogger{}

	logger.Info("starting up")
	logger.Debug("detail", Field{Key: FieldFile, Value: "r.txt"})

	require.Len(t, logger.Entries, 2)
	assert.True(t, logger.HasEntry("INFO", "starting up"))
	assert.True(t, logger.HasEntry("DEBUG", "detail"))
	assert.False(t, logger.HasEntry("ERROR", "starting up"))
}

func TestMockLoggerDerivedLoggersShareEntries(t *testing.T) {
	logger := &MockLogger{}
	err := errors.New("boom")

	logger.WithError(err).WithField(FieldStrategy, "Keyword").Warn("strategy failed")

	require.Len(t, logger.Entries, 1)
	entry := logger.Entries[0]
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, err, entry.Error)
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, FieldStrategy, entry.Fields[0].Key)
	assert.Equal(t, "Keyword", entry.Fields[0].Value)
}
