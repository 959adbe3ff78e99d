package postgres

import (
	"fmt"
	"strings"
	"time"
)

var isolationLevels = map[string]string{
	"serializable":    "SERIALIZABLE",
	"repeatable read": "REPEATABLE READ",
	"read committed":  "READ COMMITTED",
}

// SessionStatements returns the statements that put a freshly leased
// connection into strict isolation and a fixed UTC offset. A pooled
// connection keeps whatever a previous lease set, so they run on every lease.
func SessionStatements(utcOffset, isolation string) ([]string, error) {
	level, ok := isolationLevels[strings.ToLower(strings.TrimSpace(isolation))]
	if !ok {
		return nil, fmt.Errorf("unsupported isolation level %q", isolation)
	}

	if _, err := time.Parse("-07:00", utcOffset); err != nil {
		return nil, fmt.Errorf("time zone %q is not a UTC offset like -08:00: %w", utcOffset, err)
	}

	return []string{
		"SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL " + level,
		fmt.Sprintf("SET TIME ZONE INTERVAL '%s' HOUR TO MINUTE", utcOffset),
	}, nil
}
