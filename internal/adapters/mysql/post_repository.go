// Package mysql implements the post store on MySQL (or any server speaking
// its wire protocol, such as TiDB).
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	driver "github.com/go-sql-driver/mysql"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// TablePosts is the table GetPostByID reads from.
const TablePosts = "posts"

const selectPostByID = "SELECT id, title, body, author, published_at FROM " + TablePosts + " WHERE id = ?"

// PostRepository implements ports.PostRepository on a *sql.DB.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository wraps an open database handle.
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// GetPostByID returns the row with the given id, or nil when there is none.
func (r *PostRepository) GetPostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	var (
		p           domain.Post
		body        sql.NullString
		author      sql.NullString
		publishedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, selectPostByID, string(id)).
		Scan(&p.ID, &p.Title, &body, &author, &publishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select post %s: %w", id, err)
	}
	p.Body = body.String
	p.Author = author.String
	if publishedAt.Valid {
		p.PublishedAt = publishedAt.Time
	}
	return &p, nil
}

// NormalizeDSN parses dsn and forces the options the repository relies on
// (parseTime for DATETIME columns, UTC location).
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// Open connects to the database described by dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	normalized, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(4)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

var _ ports.PostRepository = (*PostRepository)(nil)
