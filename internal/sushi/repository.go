package sushi

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sushimenu/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Sushi, error)
	GetByID(ctx context.Context, id string) (*Sushi, error)
	Create(ctx context.Context, s Sushi) (*Sushi, error)
	Archive(ctx context.Context, id string) (*Sushi, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const sushiColumns = "id, name, image, price, type, fish_type, pieces, created_at"

func scanSushi(row interface{ Scan(...any) error }) (*Sushi, error) {
	var (
		s         Sushi
		fishType  sql.NullString
		pieces    sql.NullInt32
		createdAt time.Time
	)

	err := row.Scan(&s.ID, &s.Name, &s.Image, &s.Price, &s.Type, &fishType, &pieces, &createdAt)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	switch s.Type {
	case TypeNigiri:
		s.Details = NigiriDetails{FishType: fishType.String}
	case TypeRoll:
		s.Details = RollDetails{Pieces: int(pieces.Int32)}
	}

	return &s, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetAll"),
	)

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sushiColumns+" FROM sushi WHERE archived_at IS NULL ORDER BY created_at",
	)
	if err != nil {
		log.Error("failed to query sushi", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []Sushi
	for rows.Next() {
		s, err := scanSushi(rows)
		if err != nil {
			log.Error("failed to scan sushi row", zap.Error(err))
			return nil, err
		}
		items = append(items, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Sushi, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sushiColumns+" FROM sushi WHERE id = $1 AND archived_at IS NULL", id,
	)

	s, err := scanSushi(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *repository) Create(ctx context.Context, s Sushi) (*Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("name", s.Name),
	)

	s.ID = uuid.New().String()

	var (
		fishType sql.NullString
		pieces   sql.NullInt32
	)
	switch d := s.Details.(type) {
	case NigiriDetails:
		fishType = sql.NullString{String: d.FishType, Valid: true}
	case RollDetails:
		pieces = sql.NullInt32{Int32: int32(d.Pieces), Valid: true}
	}

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO sushi (id, name, image, price, type, fish_type, pieces)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
		s.ID, s.Name, s.Image, s.Price, string(s.Type), fishType, pieces,
	).Scan(&createdAt)
	if err != nil {
		log.Error("failed to insert sushi", zap.Error(err))
		return nil, err
	}

	s.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	log.Info("sushi created", zap.String("id", s.ID))
	return &s, nil
}

func (r *repository) Archive(ctx context.Context, id string) (*Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Archive"),
		zap.String("id", id),
	)

	row := r.db.QueryRowContext(ctx,
		`UPDATE sushi SET archived_at = NOW()
		 WHERE id = $1 AND archived_at IS NULL
		 RETURNING `+sushiColumns,
		id,
	)

	s, err := scanSushi(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Either the item never existed or it is already archived.
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM sushi WHERE id = $1)", id,
		).Scan(&exists); err != nil {
			log.Error("failed to check sushi existence", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, ErrAlreadyArchived
		}
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("failed to archive sushi", zap.Error(err))
		return nil, err
	}

	log.Info("sushi archived")
	return s, nil
}
