package analytics

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"projectpager/internal/domain"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS nav_events (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	occurred_at  TEXT NOT NULL,
	event        TEXT NOT NULL,
	project_slug TEXT NOT NULL,
	ref_tag      TEXT NOT NULL,
	detail       TEXT NOT NULL
);
`

const (
	eventSwiped = "swiped_project"
	eventClosed = "closed_project_page"
)

// Store is a Tracker that persists events to a local SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the analytics database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create analytics schema: %w", err)
	}

	var version int
	err = db.QueryRow(`SELECT version FROM schema_meta`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := db.Exec(`INSERT INTO schema_meta (version) VALUES (?)`, schemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to record schema version: %w", err)
		}
	case err != nil:
		db.Close()
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	case version != schemaVersion:
		db.Close()
		return nil, fmt.Errorf("unsupported analytics schema version %d", version)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) TrackSwipedProject(project domain.Project, refTag domain.RefTag, direction string) {
	s.insert(eventSwiped, project, refTag, direction)
}

func (s *Store) TrackClosedProjectPage(project domain.Project, refTag domain.RefTag, gesture string) {
	s.insert(eventClosed, project, refTag, gesture)
}

func (s *Store) insert(event string, project domain.Project, refTag domain.RefTag, detail string) {
	_, err := s.db.Exec(
		`INSERT INTO nav_events (occurred_at, event, project_slug, ref_tag, detail) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), event, project.Slug, string(refTag), detail,
	)
	if err != nil {
		// Tracking is fire-and-forget; never surface a failure to the navigator.
		log.Printf("analytics: failed to record %s: %v", event, err)
	}
}

// RecordedEvent is one persisted analytics row.
type RecordedEvent struct {
	OccurredAt  string
	Event       string
	ProjectSlug string
	RefTag      string
	Detail      string
}

// Events returns all recorded events, oldest first.
func (s *Store) Events() ([]RecordedEvent, error) {
	rows, err := s.db.Query(
		`SELECT occurred_at, event, project_slug, ref_tag, detail FROM nav_events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics events: %w", err)
	}
	defer rows.Close()

	var events []RecordedEvent
	for rows.Next() {
		var ev RecordedEvent
		if err := rows.Scan(&ev.OccurredAt, &ev.Event, &ev.ProjectSlug, &ev.RefTag, &ev.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan analytics event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
