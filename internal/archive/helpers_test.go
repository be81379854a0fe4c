package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fundgraph/internal/domain"
)

// listFunds returns the archived funds in insertion order
func (a *Archive) listFunds(ctx context.Context) ([]domain.Fund, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, name, manager, year, type, open, position_x, position_y
		FROM funds ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query funds: %w", err)
	}
	defer rows.Close()

	funds := make([]domain.Fund, 0)
	for rows.Next() {
		var (
			f        domain.Fund
			fundType string
			open     int
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.Manager, &f.Year, &fundType, &open, &f.Position.X, &f.Position.Y); err != nil {
			return nil, fmt.Errorf("failed to scan fund: %w", err)
		}
		f.Type = domain.FundType(fundType)
		f.Open = open != 0
		funds = append(funds, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating funds: %w", err)
	}
	return funds, nil
}

// listLinks returns the archived links for attr in discovery order
func (a *Archive) listLinks(ctx context.Context, attr domain.Attribute) ([]domain.Link, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, source_id, target_id, label
		FROM links WHERE attribute = ? ORDER BY seq
	`, string(attr))
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0)
	for rows.Next() {
		l := domain.Link{Attribute: attr}
		if err := rows.Scan(&l.ID, &l.Source, &l.Target, &l.Label); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}
	return links, nil
}

// activeAttribute returns the attribute that was selected when the archive was written
func (a *Archive) activeAttribute(ctx context.Context) (domain.Attribute, error) {
	var value string
	err := a.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'active_attribute'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read metadata: %w", err)
	}
	return domain.Attribute(value), nil
}
