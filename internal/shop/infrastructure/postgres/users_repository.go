package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (ur *UsersRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	listUsersSQL := `SELECT id, name, email, phone, age FROM users ORDER BY id`

	rows, err := ur.querier.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		err = rows.Scan(&user.Id, &user.Name, &user.Email, &user.Phone, &user.Age)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, nil
}

func (ur *UsersRepository) CreateUser(ctx context.Context, newUser domain.NewUser) (domain.User, error) {
	creationSQL := `INSERT INTO users (name, email, phone, age) VALUES ($1, $2, $3, $4)
RETURNING id, name, email, phone, age`

	var user domain.User
	row := ur.querier.QueryRow(ctx, creationSQL, newUser.Name, newUser.Email, newUser.Phone, newUser.Age)
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.Phone, &user.Age)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.User{}, &domain.EmailTakenError{Msg: fmt.Sprintf("email %s is already registered", newUser.Email)}
		}

		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}
