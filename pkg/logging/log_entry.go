package logging

// LogEntry represents a structured log record with fields relevant to an
// evolutionary search run.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Search-specific fields
	Generation uint64 // Iterations completed when the entry was written
	Strategy   string // Reproduction operator responsible, if any

	// General structured data
	Fields map[string]interface{}
}
