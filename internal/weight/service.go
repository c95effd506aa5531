package weight

import (
	"context"
	"fmt"

	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/stats"
	"github.com/2beens/wallfit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=weight_test

type entriesRepo interface {
	List(ctx context.Context, userID string) ([]model.WeightEntry, error)
	Add(ctx context.Context, entry *model.WeightEntry) (*model.WeightEntry, error)
	Update(ctx context.Context, userID string, entry *model.WeightEntry) (*model.WeightEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type profileWeightSetter interface {
	SetWeight(ctx context.Context, userID string, weight float64) error
}

// Service keeps the profile weight in line with the most recent entry.
type Service struct {
	repo     entriesRepo
	profiles profileWeightSetter
}

func NewService(repo entriesRepo, profiles profileWeightSetter) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
	}
}

func (s *Service) List(ctx context.Context, userID string) (_ []model.WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	return entries, nil
}

func (s *Service) Add(ctx context.Context, entry *model.WeightEntry) (_ *model.WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	added, err := s.repo.Add(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add weight entry: %w", err)
	}

	s.syncProfileWeight(ctx, added.UserID, added.ID)
	return added, nil
}

func (s *Service) Update(ctx context.Context, userID string, entry *model.WeightEntry) (_ *model.WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	updated, err := s.repo.Update(ctx, userID, entry)
	if err != nil {
		return nil, fmt.Errorf("update weight entry: %w", err)
	}

	// the entry may have been the latest before its date changed
	s.syncProfileWeight(ctx, userID, "")
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}

	s.syncProfileWeight(ctx, userID, "")
	return nil
}

// syncProfileWeight copies the weight of the user's latest entry to the
// profile. With onlyIfLatestID set, nothing happens unless that entry is the
// latest one. A user without entries keeps the profile weight as it is.
// The write is already stored at this point, so a failed sync is only logged.
func (s *Service) syncProfileWeight(ctx context.Context, userID, onlyIfLatestID string) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		log.Warnf("sync profile weight [%s], list entries: %s", userID, err)
		return
	}

	latest := stats.LatestWeight(entries)
	if latest == nil {
		return
	}
	if onlyIfLatestID != "" && latest.ID != onlyIfLatestID {
		return
	}

	if err := s.profiles.SetWeight(ctx, userID, latest.Weight); err != nil {
		log.Warnf("sync profile weight [%s]: %s", userID, err)
	}
}
