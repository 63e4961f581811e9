package memstore

import (
	"context"
	"slices"
	"sort"
	"time"

	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type notificationRepo struct {
	tx *memTx
}

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job := shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: append([]byte(nil), payload...),
		RunAt:   runAt,
		Status:  shared.JobStatusQueued,
	}
	s.jobs[job.ID] = job
	s.jobSeq = append(s.jobSeq, job.ID)
	r.tx.record(func() {
		delete(s.jobs, job.ID)
		s.jobSeq = slices.DeleteFunc(s.jobSeq, func(id uuid.UUID) bool { return id == job.ID })
	})
	return nil
}

// ClaimDue holds a store-wide dispatch lock, the in-memory stand-in for
// SKIP LOCKED row claims.
func (r *notificationRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	if err := r.tx.lock(ctx, notificationLockKey); err != nil {
		return nil, err
	}

	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []shared.NotificationJob
	for _, id := range s.jobSeq {
		job := s.jobs[id]
		if job.Status == shared.JobStatusQueued && !job.RunAt.After(now) {
			due = append(due, job)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].RunAt.Before(due[j].RunAt) })

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *notificationRepo) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	return r.mutate(id, func(job *shared.NotificationJob) {
		job.Status = shared.JobStatusSent
		job.Attempts++
		job.LastError = nil
	})
}

func (r *notificationRepo) MarkFailed(_ context.Context, id uuid.UUID, lastErr string, retryAt time.Time, giveUp bool) error {
	return r.mutate(id, func(job *shared.NotificationJob) {
		job.Status = shared.JobStatusQueued
		if giveUp {
			job.Status = shared.JobStatusFailed
		}
		job.Attempts++
		job.LastError = &lastErr
		job.RunAt = retryAt
	})
}

func (r *notificationRepo) mutate(id uuid.UUID, fn func(job *shared.NotificationJob)) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.jobs[id]
	if !ok {
		return errs.NewNotFoundError("notification job", id.String())
	}
	next := prev
	fn(&next)
	s.jobs[id] = next
	r.tx.record(func() { s.jobs[id] = prev })
	return nil
}

// Jobs returns a snapshot of every job in creation order.
func (s *Store) Jobs() []shared.NotificationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]shared.NotificationJob, 0, len(s.jobSeq))
	for _, id := range s.jobSeq {
		out = append(out, s.jobs[id])
	}
	return out
}
