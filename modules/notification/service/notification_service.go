package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"timeslotfinder/modules/notification/entity"
	"timeslotfinder/modules/notification/repository"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Notify(ctx context.Context, notifType, title, message string) error {
	notif := &entity.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      notifType,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) List(ctx context.Context, limit int) ([]entity.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, ids []string) error {
	return s.repo.MarkAsRead(ctx, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	return s.repo.MarkAllAsRead(ctx)
}

func (s *NotificationService) CountUnread(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}
