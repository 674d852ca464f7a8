package store

import (
	"fmt"
	"time"
)

// #region audit-entry
// AuditEntry is one row of the session log: a single line spoken by either
// side of the conversation, tagged with the step that consumed it.
type AuditEntry struct {
	SessionID string
	Turn      int
	Speaker   string // "usuario" | "asistente"
	Step      string
	Line      string
	CreatedAt time.Time
}
// #endregion audit-entry

// #region log-turn
// LogTurn appends a line to the session log.
func (s *Store) LogTurn(e AuditEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO session_log (session_id, turn, speaker, step, line, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID,
		e.Turn,
		e.Speaker,
		nullIfEmpty(e.Step),
		e.Line,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log turn: %w", err)
	}
	return nil
}
// #endregion log-turn

// #region transcript
// Transcript returns the logged lines of one session in turn order.
func (s *Store) Transcript(sessionID string) ([]AuditEntry, error) {
	rows, err := s.db.Query(
		`SELECT session_id, turn, speaker, step, line, created_at
		 FROM session_log WHERE session_id = ? ORDER BY id ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var step *string
		var createdStr string
		if err := rows.Scan(&e.SessionID, &e.Turn, &e.Speaker, &step, &e.Line, &createdStr); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		if step != nil {
			e.Step = *step
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion transcript

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
