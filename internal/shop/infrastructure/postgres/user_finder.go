package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type UserFinder struct{}

func NewUserFinder() *UserFinder {
	return &UserFinder{}
}

func (uf *UserFinder) FindUser(ctx context.Context, querier database.Querier, userId int) (domain.User, error) {
	findUserSQL := `SELECT id, name, email, phone, age FROM users WHERE id = $1`

	var user domain.User
	err := querier.QueryRow(ctx, findUserSQL, userId).Scan(&user.Id, &user.Name, &user.Email, &user.Phone, &user.Age)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d does not exist", userId)}
		}

		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
