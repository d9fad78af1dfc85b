package logging

// MockLogger is a mock implementation of the Logger interface for testing.
// It captures log entries for verification in tests. Not safe for concurrent
// use; tests log from a single goroutine.
type MockLogger struct {
	Entries []LogEntry

	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithError returns a derived logger that attaches err to entries it records.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.base(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger that attaches a field to entries it records.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger that attaches fields to entries it records.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	combined := make([]Field, 0, len(m.pendingFields)+len(fields))
	combined = append(combined, m.pendingFields...)
	combined = append(combined, fields...)
	return &MockLogger{
		root:          m.base(),
		pendingError:  m.pendingError,
		pendingFields: combined,
	}
}

// HasEntry reports whether a message was logged at the given level.
func (m *MockLogger) HasEntry(level, msg string) bool {
	for _, e := range m.base().Entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

// base returns the logger that owns the entry slice. Derived loggers created
// by WithError/WithField record into their originating logger so tests can
// inspect a single Entries slice.
func (m *MockLogger) base() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	m.base().Entries = append(m.base().Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}
