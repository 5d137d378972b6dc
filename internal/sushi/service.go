package sushi

import (
	"context"
	"time"

	"sushimenu/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for the sushi catalog.
type Service interface {
	GetAll(ctx context.Context) ([]Sushi, error)
	GetByID(ctx context.Context, id string) (*Sushi, error)
	Create(ctx context.Context, input CreateInput) (*Sushi, error)
	Archive(ctx context.Context, id string) (*Sushi, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetAll"),
	)

	start := time.Now()

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch sushi list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("get sushi list success",
		zap.Int("count", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	return items, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetByID"),
		zap.String("id", id),
	)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("failed to get sushi", zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("name", input.Name),
		zap.String("type", string(input.Type)),
	)

	if err := input.Validate(); err != nil {
		log.Warn("create input rejected", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, input.ToSushi())
	if err != nil {
		log.Error("failed to create sushi", zap.Error(err))
		return nil, err
	}

	log.Info("sushi created", zap.String("id", created.ID))
	return created, nil
}

func (s *service) Archive(ctx context.Context, id string) (*Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Archive"),
		zap.String("id", id),
	)

	archived, err := s.repo.Archive(ctx, id)
	if err != nil {
		log.Warn("failed to archive sushi", zap.Error(err))
		return nil, err
	}

	log.Info("sushi archived")
	return archived, nil
}
