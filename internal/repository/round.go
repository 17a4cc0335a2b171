package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkslog/scorecard-api/internal/domain"
	"github.com/linkslog/scorecard-api/internal/repository/dao"
)

type RoundDAO interface {
	Insert(ctx context.Context, round dao.Round) (dao.Round, error)
	FindByID(ctx context.Context, id uint) (dao.Round, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Round, error)
	Update(ctx context.Context, id uint, values map[string]any) error
}

type RoundRepository struct {
	dao RoundDAO
}

func NewRoundRepository(dao RoundDAO) *RoundRepository {
	return &RoundRepository{
		dao: dao,
	}
}

func (r *RoundRepository) Create(ctx context.Context, round domain.Round) (domain.Round, error) {
	created, err := r.dao.Insert(ctx, dao.Round{
		UserID:      round.UserID,
		CourseID:    round.CourseID,
		TeeID:       round.TeeID,
		Date:        round.Date,
		ScoreByHole: dao.IntArray(round.ScoreByHole),
		Putts:       dao.IntArray(round.Putts),
		Fairways:    dao.IntArray(round.Fairways),
		GIR:         dao.IntArray(round.GIR),
	})
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return roundDAOToDomain(created), nil
}

func (r *RoundRepository) FindByID(ctx context.Context, id uint) (domain.Round, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrRoundNotFound) {
			return domain.Round{}, domain.NewNotFoundError("round", id)
		}

		return domain.Round{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return roundDAOToDomain(found), nil
}

func (r *RoundRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Round, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	rounds := make([]domain.Round, len(found))
	for i, round := range found {
		rounds[i] = roundDAOToDomain(round)
	}

	return rounds, nil
}

// UpdateScores rewrites the round's score columns with the effective
// values the caller has already merged and validated.
func (r *RoundRepository) UpdateScores(ctx context.Context, id uint, round domain.Round) error {
	values := map[string]any{
		"score_by_hole": dao.IntArray(round.ScoreByHole),
		"putts":         dao.IntArray(round.Putts),
		"fairways":      dao.IntArray(round.Fairways),
		"gir":           dao.IntArray(round.GIR),
	}
	if err := r.dao.Update(ctx, id, values); err != nil {
		if errors.Is(err, dao.ErrRoundNotFound) {
			return domain.NewNotFoundError("round", id)
		}

		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func roundDAOToDomain(r dao.Round) domain.Round {
	round := domain.Round{
		ID:          r.ID,
		UserID:      r.UserID,
		CourseID:    r.CourseID,
		TeeID:       r.TeeID,
		Date:        r.Date,
		ScoreByHole: []int(r.ScoreByHole),
		Putts:       []int(r.Putts),
		Fairways:    []int(r.Fairways),
		GIR:         []int(r.GIR),
	}
	if r.Tee.ID != 0 {
		tee := teeDAOToDomain(r.Tee)
		round.Tee = &tee
	}

	return round
}
