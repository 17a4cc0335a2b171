package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkslog/scorecard-api/internal/domain"
	"github.com/linkslog/scorecard-api/internal/repository/dao"
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Name:       user.Name,
		DateJoined: user.DateJoined,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return userDAOToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrUserNotFound) {
			return domain.User{}, domain.NewNotFoundError("user", id)
		}

		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func userDAOToDomain(u dao.User) domain.User {
	user := domain.User{
		ID:         u.ID,
		Name:       u.Name,
		DateJoined: u.DateJoined,
	}
	for _, round := range u.Rounds {
		user.Rounds = append(user.Rounds, roundDAOToDomain(round))
	}

	return user
}
