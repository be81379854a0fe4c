// Package archive writes one-shot SQLite snapshots of the fund graph for
// offline analysis. The service never reads an archive back; the readers in
// the package tests exist only to check what was written.
package archive

import (
	"context"
	"database/sql"
	"fmt"

	"fundgraph/internal/domain"

	_ "modernc.org/sqlite"
)

// Archive is a SQLite file holding funds and links tables
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive at path and ensures the schema exists
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return a, nil
}

// Close releases the database handle
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS funds (
		seq INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		manager TEXT NOT NULL,
		year INTEGER NOT NULL,
		type TEXT NOT NULL,
		open INTEGER NOT NULL,
		position_x REAL NOT NULL,
		position_y REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS links (
		attribute TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		source_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		label TEXT NOT NULL,
		PRIMARY KEY (attribute, seq)
	);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_id);
	CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_id);
	`

	_, err := a.db.Exec(schema)
	return err
}

// WriteGraph replaces the archive contents with graph in a single transaction
func (a *Archive) WriteGraph(ctx context.Context, graph *domain.GraphExport) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"funds", "links", "metadata"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	fundStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO funds (seq, id, name, manager, year, type, open, position_x, position_y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare fund insert: %w", err)
	}
	defer fundStmt.Close()

	for i, f := range graph.Nodes {
		if _, err := fundStmt.ExecContext(ctx, i, f.ID, f.Name, f.Manager, f.Year, string(f.Type), boolToInt(f.Open), f.Position.X, f.Position.Y); err != nil {
			return fmt.Errorf("failed to insert fund %s: %w", f.ID, err)
		}
	}

	linkStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO links (attribute, seq, id, source_id, target_id, label)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	for _, attr := range domain.Attributes() {
		for i, l := range graph.Links[attr] {
			if _, err := linkStmt.ExecContext(ctx, string(attr), i, l.ID, l.Source, l.Target, l.Label); err != nil {
				return fmt.Errorf("failed to insert %s link %s: %w", attr, l.ID, err)
			}
		}
	}

	if graph.Active != "" {
		if _, err := tx.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('active_attribute', ?)`, string(graph.Active)); err != nil {
			return fmt.Errorf("failed to write metadata: %w", err)
		}
	}

	return tx.Commit()
}

// WriteFile creates an archive at path containing graph
func WriteFile(ctx context.Context, path string, graph *domain.GraphExport) error {
	a, err := Open(path)
	if err != nil {
		return err
	}
	if err := a.WriteGraph(ctx, graph); err != nil {
		a.Close()
		return err
	}
	return a.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
