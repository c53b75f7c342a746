package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const parseResultColumns = `id, source_name, source_hash, record, provenance, enhanced, created_at`

// SaveParseResult stores a parse and returns the stored row.
func (db *DB) SaveParseResult(ctx context.Context, in *ParseResultInput) (*ParseResult, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: input is nil", ErrInvalidInput)
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	recordJSON, err := json.Marshal(in.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	provenanceJSON, err := json.Marshal(in.Provenance)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provenance: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO parse_results (id, source_name, source_hash, record, provenance, enhanced)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+parseResultColumns,
		uuid.New(), in.SourceName, in.SourceHash, recordJSON, provenanceJSON, in.Enhanced,
	)
	result, err := scanParseResult(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save parse result: %w", err)
	}
	return result, nil
}

// GetParseResult returns the parse with id, or nil, nil when none exists.
func (db *DB) GetParseResult(ctx context.Context, id uuid.UUID) (*ParseResult, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+parseResultColumns+` FROM parse_results WHERE id = $1`, id)
	result, err := scanParseResult(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parse result: %w", err)
	}
	return result, nil
}

// ListParseResults returns stored parses, newest first.
func (db *DB) ListParseResults(ctx context.Context, limit, offset int) ([]ParseResult, error) {
	limit, offset = ClampPage(limit, offset)
	rows, err := db.pool.Query(ctx,
		`SELECT `+parseResultColumns+` FROM parse_results
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list parse results: %w", err)
	}
	defer rows.Close()

	results := []ParseResult{}
	for rows.Next() {
		result, err := scanParseResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parse result: %w", err)
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list parse results: %w", err)
	}
	return results, nil
}

// DeleteParseResult removes the parse with id and reports whether it existed.
func (db *DB) DeleteParseResult(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM parse_results WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete parse result: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanParseResult(row pgx.Row) (*ParseResult, error) {
	var (
		r              ParseResult
		recordJSON     []byte
		provenanceJSON []byte
	)
	if err := row.Scan(&r.ID, &r.SourceName, &r.SourceHash, &recordJSON, &provenanceJSON, &r.Enhanced, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(recordJSON, &r.Record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	if err := json.Unmarshal(provenanceJSON, &r.Provenance); err != nil {
		return nil, fmt.Errorf("failed to decode provenance: %w", err)
	}
	return &r, nil
}
