package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"lifeos/internal/domain"
)

// SQLiteSource reads tasks and notes out of the Life OS database,
// joined with their categories. Child categories render as
// "Parent - Child" so the embedded text carries the full path.
type SQLiteSource struct {
	db *sql.DB
}

// Open opens the database at path. The file must already exist; the
// relational layer owns schema creation.
func Open(path string) (*SQLiteSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found at %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

const tasksQuery = `
	SELECT t.id, c.name, p.name, t.content, t.due_date, t.created_date, t.completed
	FROM tasks t
	JOIN categories c ON t.category_id = c.id
	LEFT JOIN categories p ON c.parent_id = p.id
	ORDER BY t.id`

const notesQuery = `
	SELECT n.id, c.name, p.name, n.content, n.created_date
	FROM notes n
	JOIN categories c ON n.category_id = c.id
	LEFT JOIN categories p ON c.parent_id = p.id
	ORDER BY n.id`

// Items returns every task and note, tasks first.
func (s *SQLiteSource) Items(ctx context.Context) ([]domain.RawItem, error) {
	var items []domain.RawItem

	tasks, err := s.queryTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	items = append(items, tasks...)

	notes, err := s.queryNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	items = append(items, notes...)

	return items, nil
}

func (s *SQLiteSource) queryTasks(ctx context.Context) ([]domain.RawItem, error) {
	rows, err := s.db.QueryContext(ctx, tasksQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var (
			id                   int
			category, content    string
			parent, due, created sql.NullString
			completed            sql.NullBool
		)
		if err := rows.Scan(&id, &category, &parent, &content, &due, &created, &completed); err != nil {
			return nil, err
		}
		items = append(items, domain.RawItem{
			ID:          id,
			Type:        domain.TypeTask,
			Category:    displayName(category, parent),
			Content:     content,
			DueDate:     due.String,
			Completed:   completed.Valid && completed.Bool,
			CreatedDate: created.String,
		})
	}
	return items, rows.Err()
}

func (s *SQLiteSource) queryNotes(ctx context.Context) ([]domain.RawItem, error) {
	rows, err := s.db.QueryContext(ctx, notesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var (
			id                int
			category, content string
			parent, created   sql.NullString
		)
		if err := rows.Scan(&id, &category, &parent, &content, &created); err != nil {
			return nil, err
		}
		items = append(items, domain.RawItem{
			ID:          id,
			Type:        domain.TypeNote,
			Category:    displayName(category, parent),
			Content:     content,
			CreatedDate: created.String,
		})
	}
	return items, rows.Err()
}

// displayName builds the full category path, e.g. "Wedding - Vendors"
// for a child category of "Wedding".
func displayName(category string, parent sql.NullString) string {
	if parent.Valid && parent.String != "" {
		return parent.String + " - " + category
	}
	return category
}
