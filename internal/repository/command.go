// Package repository provides persistence implementations for command records
// using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/CmdKeeper/internal/models"
)

// PostgresCommandRepository implements command persistence against a PostgreSQL database.
type PostgresCommandRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCommandRepository creates a new PostgresCommandRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresCommandRepository(db *sql.DB) *PostgresCommandRepository {
	return &PostgresCommandRepository{DB: db}
}

// ListByOwner fetches all commands belonging to the given owner,
// ordered by creation time.
//
//	ctx:   context for cancellation and deadlines
//	owner: identifier of the owning user
//
// Returns a slice of models.Command or an error if the query or scanning fails.
func (r *PostgresCommandRepository) ListByOwner(ctx context.Context, owner string) ([]models.Command, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, command, category, owner, created_at FROM commands
		WHERE owner = $1 ORDER BY created_at
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

// ListByOwnerAndCategory fetches the owner's commands whose category exactly
// matches the given value. An empty result is not an error.
func (r *PostgresCommandRepository) ListByOwnerAndCategory(ctx context.Context, owner, category string) ([]models.Command, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, command, category, owner, created_at FROM commands
		WHERE owner = $1 AND category = $2 ORDER BY created_at
	`, owner, category)
	if err != nil {
		return nil, fmt.Errorf("ListByOwnerAndCategory: %w", err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

// Create persists a new command record.
func (r *PostgresCommandRepository) Create(ctx context.Context, cmd models.Command) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO commands (id, title, command, category, owner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, cmd.ID, cmd.Title, cmd.Command, cmd.Category, cmd.Owner, cmd.CreatedAt)
	if err != nil {
		return fmt.Errorf("create command: %w", err)
	}
	return nil
}

// Delete removes the command with the given id if it belongs to owner.
// The single owner+id predicate makes a missing record and another user's
// record indistinguishable: both return false with no error.
func (r *PostgresCommandRepository) Delete(ctx context.Context, owner, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM commands WHERE id = $1 AND owner = $2`,
		id, owner,
	)
	if err != nil {
		return false, fmt.Errorf("delete command: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete command: %w", err)
	}
	return affected > 0, nil
}

func scanCommands(rows *sql.Rows) ([]models.Command, error) {
	var commands []models.Command
	for rows.Next() {
		var cmd models.Command
		if err := rows.Scan(&cmd.ID, &cmd.Title, &cmd.Command, &cmd.Category, &cmd.Owner, &cmd.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		commands = append(commands, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return commands, nil
}
