package sqlutils

import (
	"database/sql"
	"log"
	"strings"
)

// LogQueryer wraps a Queryer and logs every query before handing it
// over. Nothing else changes: same rows, same errors, same rebinding.
type LogQueryer struct {
	db     Queryer
	logger *log.Logger
}

var _ Queryer = (*LogQueryer)(nil)

func NewLogQueryer(db Queryer, logger *log.Logger) *LogQueryer {
	return &LogQueryer{db: db, logger: logger}
}

// Query logs the normalized query text and the bound args, then runs
// the query on the wrapped connection.
func (l *LogQueryer) Query(query string, args ...any) (*sql.Rows, error) {
	l.logger.Printf("query: %s", normalizeQuery(query))
	l.logger.Printf("args: %v", args)

	return l.db.Query(query, args...)
}

// Rebind passes through to the wrapped connection.
func (l *LogQueryer) Rebind(query string) string {
	return l.db.Rebind(query)
}

// normalizeQuery collapses whitespace runs into single spaces so
// multi-line query literals log on one line.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
