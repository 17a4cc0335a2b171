package service

import (
	"context"
	"fmt"
	"time"

	"github.com/linkslog/scorecard-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type UserService struct {
	repo UserRepository
	calc domain.HandicapCalculator
}

func NewUserService(repo UserRepository, calc domain.HandicapCalculator) *UserService {
	return &UserService{
		repo: repo,
		calc: calc,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if err := user.Validate(); err != nil {
		return domain.User{}, err
	}

	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now().UTC().Truncate(24 * time.Hour)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetUser loads a user with their rounds, most recent first.
func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// Handicap computes the user's aggregate handicap from their most
// recent rounds' differentials. Reports ok == false when the configured
// calculator cannot produce a value.
func (s *UserService) Handicap(user domain.User) (float64, bool) {
	return s.calc.Compute(user.RecentDifferentials(domain.HandicapRoundsConsidered))
}
