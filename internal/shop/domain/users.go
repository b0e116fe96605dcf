package domain

import (
	"context"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
)

type User struct {
	Id    int     `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
	Age   *int    `json:"age"`
}

type NewUser struct {
	Name  string
	Email string
	Phone *string
	Age   *int
}

type UsersRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, newUser NewUser) (User, error)
}

// UserFinder probes user existence on the transaction handle owned by the
// purchase flow, so the check and the purchase insert see the same snapshot.
type UserFinder interface {
	FindUser(ctx context.Context, querier database.Querier, userId int) (User, error)
}
