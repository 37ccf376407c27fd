package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stickynotes/internal/pkg/logger"
)

type NoteStore interface {
	PurgeDeleted(ctx context.Context, cutoff int64) (int64, error)
}

// NotePurgeJob hard-deletes notes that were soft-deleted more than maxAge
// ago. Until then a deleted note only carries the deleted state flag.
type NotePurgeJob struct {
	notes  NoteStore
	maxAge time.Duration
}

func NewNotePurgeJob(notes NoteStore, maxAge time.Duration) *NotePurgeJob {
	return &NotePurgeJob{notes: notes, maxAge: maxAge}
}

func (j *NotePurgeJob) Name() string {
	return "note_purge"
}

func (j *NotePurgeJob) Run(ctx context.Context) error {
	maxAge := j.maxAge
	if maxAge <= 0 {
		maxAge = 720 * time.Hour
	}
	cutoff := time.Now().Add(-maxAge).Unix()
	purged, err := j.notes.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		logger.L().Info("purged deleted notes", zap.Int64("count", purged))
	}
	return nil
}
