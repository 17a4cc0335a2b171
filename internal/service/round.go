package service

import (
	"context"
	"fmt"
	"time"

	"github.com/linkslog/scorecard-api/internal/domain"
)

type RoundRepository interface {
	Create(ctx context.Context, round domain.Round) (domain.Round, error)
	FindByID(ctx context.Context, id uint) (domain.Round, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Round, error)
	UpdateScores(ctx context.Context, id uint, round domain.Round) error
}

// CourseFinder is the slice of the course repository the round recorder
// needs for cross-entity checks.
type CourseFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Course, error)
	FindTeeByID(ctx context.Context, id uint) (domain.Tee, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// RoundService records played rounds. It validates the round against
// the referenced course and tee before anything is persisted; score and
// handicap differential are derived on read, never stored.
type RoundService struct {
	rounds  RoundRepository
	courses CourseFinder
	users   UserFinder
}

func NewRoundService(rounds RoundRepository, courses CourseFinder, users UserFinder) *RoundService {
	return &RoundService{
		rounds:  rounds,
		courses: courses,
		users:   users,
	}
}

func (s *RoundService) CreateRound(ctx context.Context, round domain.Round) (domain.Round, error) {
	if _, err := s.users.FindByID(ctx, round.UserID); err != nil {
		return domain.Round{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if _, err := s.courses.FindByID(ctx, round.CourseID); err != nil {
		return domain.Round{}, fmt.Errorf("s.courses.FindByID -> %w", err)
	}
	tee, err := s.courses.FindTeeByID(ctx, round.TeeID)
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.courses.FindTeeByID -> %w", err)
	}

	if err = domain.ValidateRoundTee(round, tee); err != nil {
		return domain.Round{}, err
	}
	if err = round.Validate(); err != nil {
		return domain.Round{}, err
	}

	if round.Date.IsZero() {
		round.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	created, err := s.rounds.Create(ctx, round)
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.rounds.Create -> %w", err)
	}

	created.Tee = &tee

	return created, nil
}

func (s *RoundService) GetRound(ctx context.Context, userID, roundID uint) (domain.Round, error) {
	round, err := s.rounds.FindByID(ctx, roundID)
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.rounds.FindByID -> %w", err)
	}
	if round.UserID != userID {
		return domain.Round{}, domain.NewNotFoundError("round", roundID)
	}

	return round, nil
}

func (s *RoundService) ListRounds(ctx context.Context, userID uint) ([]domain.Round, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	rounds, err := s.rounds.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.rounds.FindByUserID -> %w", err)
	}

	return rounds, nil
}

// UpdateRound changes score-related fields only. A round's venue is
// immutable once recorded, so course and tee changes are rejected.
func (s *RoundService) UpdateRound(ctx context.Context, userID, roundID uint, patch domain.RoundPatch) (domain.Round, error) {
	round, err := s.GetRound(ctx, userID, roundID)
	if err != nil {
		return domain.Round{}, err
	}

	if patch.CourseID != nil && *patch.CourseID != round.CourseID {
		return domain.Round{}, domain.NewValidationError("a round's course cannot be changed")
	}
	if patch.TeeID != nil && *patch.TeeID != round.TeeID {
		return domain.Round{}, domain.NewValidationError("a round's tee cannot be changed")
	}

	if patch.ScoreByHole != nil {
		round.ScoreByHole = patch.ScoreByHole
	}
	if patch.Putts != nil {
		round.Putts = patch.Putts
	}
	if patch.Fairways != nil {
		round.Fairways = patch.Fairways
	}
	if patch.GIR != nil {
		round.GIR = patch.GIR
	}

	if err = round.Validate(); err != nil {
		return domain.Round{}, err
	}

	if err = s.rounds.UpdateScores(ctx, roundID, round); err != nil {
		return domain.Round{}, fmt.Errorf("s.rounds.UpdateScores -> %w", err)
	}

	return round, nil
}
