package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hibiken/asynq"

	"timeslotfinder/core/logger"
	"timeslotfinder/core/utils"
	notificationEntity "timeslotfinder/modules/notification/entity"
	notificationService "timeslotfinder/modules/notification/service"
	"timeslotfinder/modules/search/entity"
	"timeslotfinder/modules/search/repository"
	slotsService "timeslotfinder/modules/slots/service"
)

// SearchService persists slot searches and runs them, either inline or
// through the task queue.
type SearchService struct {
	repo          *repository.SearchRepository
	finder        *slotsService.TimeslotFinderService
	notifications *notificationService.NotificationService
	asynqClient   *asynq.Client
}

func NewSearchService(
	repo *repository.SearchRepository,
	finder *slotsService.TimeslotFinderService,
	notifications *notificationService.NotificationService,
	asynqClient *asynq.Client,
) *SearchService {
	return &SearchService{
		repo:          repo,
		finder:        finder,
		notifications: notifications,
		asynqClient:   asynqClient,
	}
}

// Create stores a new search. Async searches are enqueued for the worker;
// otherwise the slots are computed before returning.
func (s *SearchService) Create(
	ctx context.Context,
	participants []string,
	startDate, endDate time.Time,
	timezone string,
	durationMinutes int,
	async bool,
) (*entity.Search, error) {
	search := &entity.Search{
		ID:              uuid.New(),
		ShareSlug:       newShareSlug(participants),
		Participants:    participants,
		StartDate:       startDate,
		EndDate:         endDate,
		Timezone:        timezone,
		DurationMinutes: durationMinutes,
		Status:          entity.StatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, search); err != nil {
		return nil, err
	}

	if async {
		task, err := NewSearchRunTask(search.ID)
		if err != nil {
			return nil, err
		}
		info, err := s.asynqClient.EnqueueContext(ctx, task)
		if err != nil {
			logger.Error("SearchService:Enqueue:Error", "search_id", search.ID, "error", err)
			return nil, err
		}
		logger.Info("SearchService:Enqueued", "search_id", search.ID, "task_id", info.ID)
		return search, nil
	}

	if err := s.Run(ctx, search.ID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, search.ID)
}

// Run executes a stored search and records the outcome. A failed run is
// recorded on the search itself, so Run only returns infrastructure errors.
func (s *SearchService) Run(ctx context.Context, id uuid.UUID) error {
	search, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	slots, findErr := s.finder.FindSlots(
		ctx,
		search.Participants,
		search.StartDate,
		search.EndDate,
		search.Timezone,
		search.DurationMinutes,
	)
	if findErr != nil {
		logger.Error("SearchService:Run:FindFailed", "search_id", id, "error", findErr)
		if err := s.repo.MarkFailed(ctx, id, findErr.Error()); err != nil {
			return err
		}
		s.notifyResult(ctx, search, 0, findErr)
		return nil
	}

	if err := s.repo.MarkCompleted(ctx, id, entity.SlotList(slots)); err != nil {
		return err
	}
	s.notifyResult(ctx, search, len(slots), nil)

	logger.Info("SearchService:Run:Completed", "search_id", id, "slots", len(slots))
	return nil
}

func (s *SearchService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Search, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SearchService) GetBySlug(ctx context.Context, shareSlug string) (*entity.Search, error) {
	return s.repo.GetBySlug(ctx, shareSlug)
}

func (s *SearchService) List(ctx context.Context, limit int) ([]entity.Search, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit)
}

func (s *SearchService) notifyResult(ctx context.Context, search *entity.Search, slotCount int, runErr error) {
	var notifType, title, message string
	if runErr != nil {
		notifType = notificationEntity.TypeSearchFailed
		title = "Slot search failed"
		message = fmt.Sprintf("Search %s failed: %v", search.ShareSlug, runErr)
	} else {
		notifType = notificationEntity.TypeSearchCompleted
		title = "Slot search completed"
		message = fmt.Sprintf("Search %s found %d free slots", search.ShareSlug, slotCount)
	}

	if err := s.notifications.Notify(ctx, notifType, title, message); err != nil {
		logger.Warn("SearchService:Notify:Error", "search_id", search.ID, "error", err)
	}
}

// newShareSlug builds a readable, unique slug from the participant
// mailbox names plus a short random suffix.
func newShareSlug(participants []string) string {
	names := make([]string, 0, 3)
	for i, p := range participants {
		if i == 3 {
			break
		}
		name := p
		if at := strings.Index(p, "@"); at > 0 {
			name = p[:at]
		}
		names = append(names, name)
	}

	suffix := utils.GenerateID()
	if suffix == "" {
		suffix = utils.GenerateRandomString(7)
	}
	return slug.Make(strings.Join(names, "-")) + "-" + suffix
}
