package application

import (
	"context"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
)

type UsersCase struct {
	usersRepository domain.UsersRepository
}

func NewUsersCase(usersRepository domain.UsersRepository) *UsersCase {
	return &UsersCase{
		usersRepository: usersRepository,
	}
}

func (uc *UsersCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.usersRepository.ListUsers(ctx)
}

func (uc *UsersCase) CreateUser(ctx context.Context, newUser domain.NewUser) (domain.User, error) {
	if newUser.Name == "" {
		return domain.User{}, &domain.InvalidArgumentsError{Msg: "name is required"}
	}

	if newUser.Email == "" {
		return domain.User{}, &domain.InvalidArgumentsError{Msg: "email is required"}
	}

	return uc.usersRepository.CreateUser(ctx, newUser)
}
