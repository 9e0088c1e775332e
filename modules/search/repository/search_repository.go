package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"timeslotfinder/core/database"
	"timeslotfinder/core/errors"
	"timeslotfinder/core/logger"
	"timeslotfinder/modules/search/entity"
)

type SearchRepository struct {
	db database.IDatabase
}

func NewSearchRepository(db database.IDatabase) *SearchRepository {
	return &SearchRepository{db: db}
}

func (r *SearchRepository) Create(ctx context.Context, search *entity.Search) error {
	query := `
		INSERT INTO searches (id, share_slug, participants, start_date, end_date, timezone,
			duration_minutes, status, slots, error_message, created_at, completed_at)
		VALUES (:id, :share_slug, :participants, :start_date, :end_date, :timezone,
			:duration_minutes, :status, :slots, :error_message, :created_at, :completed_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, search)
	if err != nil {
		logger.Error("SearchRepository:Create:Error", "error", err)
		return err
	}
	return nil
}

func (r *SearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Search, error) {
	var search entity.Search
	err := r.db.GetContext(ctx, &search, `SELECT * FROM searches WHERE id = $1`, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Search not found", err)
		}
		logger.Error("SearchRepository:GetByID:Error", "error", err)
		return nil, err
	}
	return &search, nil
}

func (r *SearchRepository) GetBySlug(ctx context.Context, slug string) (*entity.Search, error) {
	var search entity.Search
	err := r.db.GetContext(ctx, &search, `SELECT * FROM searches WHERE share_slug = $1`, slug)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Search not found", err)
		}
		logger.Error("SearchRepository:GetBySlug:Error", "error", err)
		return nil, err
	}
	return &search, nil
}

func (r *SearchRepository) List(ctx context.Context, limit int) ([]entity.Search, error) {
	query := `
		SELECT * FROM searches
		ORDER BY created_at DESC
		LIMIT $1
	`
	var searches []entity.Search
	err := r.db.SelectContext(ctx, &searches, query, limit)
	if err != nil {
		logger.Error("SearchRepository:List:Error", "error", err)
		return nil, err
	}
	return searches, nil
}

func (r *SearchRepository) MarkCompleted(ctx context.Context, id uuid.UUID, slots entity.SlotList) error {
	query := `
		UPDATE searches
		SET status = $2, slots = $3, error_message = NULL, completed_at = $4
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, id, entity.StatusCompleted, slots, time.Now())
	if err != nil {
		logger.Error("SearchRepository:MarkCompleted:Error", "error", err)
		return err
	}
	return nil
}

func (r *SearchRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	query := `
		UPDATE searches
		SET status = $2, error_message = $3, completed_at = $4
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, id, entity.StatusFailed, message, time.Now())
	if err != nil {
		logger.Error("SearchRepository:MarkFailed:Error", "error", err)
		return err
	}
	return nil
}
