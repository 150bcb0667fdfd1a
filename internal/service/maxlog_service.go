package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
)

// MaxLogInput is one requested max-log entry, used by both the single and
// batch creation paths.
type MaxLogInput struct {
	ExerciseID string    `json:"exercise_id"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes"`
}

// MaxLogService orchestrates validation, persistence and cache invalidation
// around the MaxLog entity. Domain failures come back as typed values
// (*domain.ValidationError, domain.ErrMaxLogNotFound) for the handlers to
// translate.
type MaxLogService struct {
	maxLogRepo   domain.MaxLogRepository
	exerciseRepo domain.ExerciseRepository
	records      *RecordService
	fileRepo     domain.FileRepository // optional, nil disables attachments
}

// NewMaxLogService creates a new max-log service
func NewMaxLogService(
	maxLogRepo domain.MaxLogRepository,
	exerciseRepo domain.ExerciseRepository,
	records *RecordService,
	fileRepo domain.FileRepository,
) *MaxLogService {
	return &MaxLogService{
		maxLogRepo:   maxLogRepo,
		exerciseRepo: exerciseRepo,
		records:      records,
		fileRepo:     fileRepo,
	}
}

// Create validates and persists a new max log, then invalidates the cached
// records for the profile.
func (s *MaxLogService) Create(ctx context.Context, profileID string, in MaxLogInput) (domain.MaxLog, error) {
	if _, err := s.exerciseRepo.GetByID(ctx, in.ExerciseID); err != nil {
		return domain.MaxLog{}, fmt.Errorf("invalid exercise: %w", err)
	}

	maxLog, err := domain.NewMaxLog(profileID, in.ExerciseID, in.Weight, in.Reps, in.Date, in.Notes)
	if err != nil {
		return domain.MaxLog{}, err
	}

	if err := s.maxLogRepo.Save(ctx, maxLog); err != nil {
		return domain.MaxLog{}, fmt.Errorf("failed to save max log: %w", err)
	}

	s.records.Invalidate(ctx, profileID)
	return maxLog, nil
}

// CreateBatch persists several max logs with an all-or-nothing policy:
// every entry is validated before any of them is written.
func (s *MaxLogService) CreateBatch(ctx context.Context, profileID string, inputs []MaxLogInput) ([]domain.MaxLog, error) {
	logs := make([]domain.MaxLog, 0, len(inputs))
	for i, in := range inputs {
		if _, err := s.exerciseRepo.GetByID(ctx, in.ExerciseID); err != nil {
			return nil, fmt.Errorf("entry %d: invalid exercise: %w", i, err)
		}
		maxLog, err := domain.NewMaxLog(profileID, in.ExerciseID, in.Weight, in.Reps, in.Date, in.Notes)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		logs = append(logs, maxLog)
	}
	if len(logs) == 0 {
		return logs, nil
	}

	if err := s.maxLogRepo.SaveAll(ctx, logs); err != nil {
		return nil, fmt.Errorf("failed to save max logs: %w", err)
	}

	s.records.Invalidate(ctx, profileID)
	return logs, nil
}

// Update clones the stored log with the given overrides; derived estimates
// are recomputed by the entity, never patched in place.
func (s *MaxLogService) Update(ctx context.Context, profileID, id string, upd domain.MaxLogUpdate) (domain.MaxLog, error) {
	existing, err := s.maxLogRepo.FindByID(ctx, profileID, id)
	if err != nil {
		return domain.MaxLog{}, err
	}

	updated, err := existing.CloneWithUpdate(upd)
	if err != nil {
		return domain.MaxLog{}, err
	}

	if err := s.maxLogRepo.Save(ctx, updated); err != nil {
		return domain.MaxLog{}, fmt.Errorf("failed to save max log: %w", err)
	}

	s.records.Invalidate(ctx, profileID)
	return updated, nil
}

// Delete removes a max log. Deleting an id that was never created is a
// no-op, not an error.
func (s *MaxLogService) Delete(ctx context.Context, profileID, id string) error {
	if err := s.maxLogRepo.Delete(ctx, profileID, id); err != nil {
		return fmt.Errorf("failed to delete max log: %w", err)
	}
	s.records.Invalidate(ctx, profileID)
	return nil
}

// Get retrieves a single max log by id.
func (s *MaxLogService) Get(ctx context.Context, profileID, id string) (domain.MaxLog, error) {
	return s.maxLogRepo.FindByID(ctx, profileID, id)
}

// List returns all max logs for a profile.
func (s *MaxLogService) List(ctx context.Context, profileID string) ([]domain.MaxLog, error) {
	return s.maxLogRepo.FindAll(ctx, profileID)
}

// ListByExercise returns all max logs for one exercise.
func (s *MaxLogService) ListByExercise(ctx context.Context, profileID, exerciseID string) ([]domain.MaxLog, error) {
	return s.maxLogRepo.FindByExercise(ctx, profileID, exerciseID)
}

// AttachProof uploads a lift proof (photo/video) and links it to the log.
func (s *MaxLogService) AttachProof(ctx context.Context, profileID, id string, file []byte, filename, contentType string) (domain.MaxLog, error) {
	if s.fileRepo == nil {
		return domain.MaxLog{}, fmt.Errorf("attachment storage is not configured")
	}

	existing, err := s.maxLogRepo.FindByID(ctx, profileID, id)
	if err != nil {
		return domain.MaxLog{}, err
	}

	key := fmt.Sprintf("maxlogs/%s/%s_%s", profileID, id, filename)
	url, err := s.fileRepo.Upload(ctx, file, key, contentType)
	if err != nil {
		return domain.MaxLog{}, fmt.Errorf("failed to upload attachment: %w", err)
	}

	existing.AttachmentURL = url
	existing.UpdatedAt = time.Now()
	if err := s.maxLogRepo.Save(ctx, existing); err != nil {
		return domain.MaxLog{}, fmt.Errorf("failed to save max log: %w", err)
	}

	log.Printf("Attached proof to max log %s for profile %s", id, profileID)
	return existing, nil
}
