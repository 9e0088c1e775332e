package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"timeslotfinder/core/database"
	"timeslotfinder/core/logger"
	"timeslotfinder/modules/notification/entity"
)

type NotificationRepository struct {
	db database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, type, is_read, created_at)
		VALUES (:id, :title, :message, :type, :is_read, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		logger.Error("NotificationRepository:Create:Error", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context, limit int) ([]entity.Notification, error) {
	query := `
		SELECT * FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`
	var notifications []entity.Notification
	err := r.db.SelectContext(ctx, &notifications, query, limit)
	if err != nil {
		logger.Error("NotificationRepository:List:Error", "error", err)
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = true WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}

	query = r.db.SQLx().Rebind(query)
	if err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error("NotificationRepository:MarkAsRead:Error", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context) error {
	err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE is_read = false`)
	if err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead:Error", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE is_read = false`
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		logger.Error("NotificationRepository:CountUnread:Error", "error", err)
		return 0, err
	}
	return count, nil
}
