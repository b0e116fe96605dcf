package postgres

import (
	"testing"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository_ListUsers(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		expectedRes []domain.User
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	phone := "555-0101"
	age := 30

	tests := []testCase{
		{
			name: "two users",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "age"}).
					AddRow(1, "Maria", "maria@example.com", &phone, &age).
					AddRow(2, "Pedro", "pedro@example.com", nil, nil)
				mock.ExpectQuery("SELECT").
					WillReturnRows(rows)
			},
			expectedRes: []domain.User{
				{Id: 1, Name: "Maria", Email: "maria@example.com", Phone: &phone, Age: &age},
				{Id: 2, Name: "Pedro", Email: "pedro@example.com"},
			},
			expectedErr: nil,
		},
		{
			name: "no users",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "age"})
				mock.ExpectQuery("SELECT").
					WillReturnRows(rows)
			},
			expectedRes: []domain.User{},
			expectedErr: nil,
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WillReturnError(assert.AnError)
			},
			expectedRes: nil,
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			usersRepository := NewUsersRepository(mock)
			res, err := usersRepository.ListUsers(t.Context())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestUsersRepository_CreateUser(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		newUser domain.NewUser

		expectedRes domain.User
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:    "successful creation",
			newUser: domain.NewUser{Name: "Maria", Email: "maria@example.com"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "age"}).
					AddRow(1, "Maria", "maria@example.com", nil, nil)
				mock.ExpectQuery("INSERT INTO users").
					WithArgs("Maria", "maria@example.com", (*string)(nil), (*int)(nil)).
					WillReturnRows(rows)
			},
			expectedRes: domain.User{Id: 1, Name: "Maria", Email: "maria@example.com"},
			expectedErr: nil,
		},
		{
			name:    "email already registered",
			newUser: domain.NewUser{Name: "Maria", Email: "maria@example.com"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO users").
					WithArgs("Maria", "maria@example.com", (*string)(nil), (*int)(nil)).
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectedRes: domain.User{},
			expectedErr: &domain.EmailTakenError{},
		},
		{
			name:    "database error",
			newUser: domain.NewUser{Name: "Maria", Email: "maria@example.com"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO users").
					WithArgs("Maria", "maria@example.com", (*string)(nil), (*int)(nil)).
					WillReturnError(assert.AnError)
			},
			expectedRes: domain.User{},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			usersRepository := NewUsersRepository(mock)
			res, err := usersRepository.CreateUser(t.Context(), tt.newUser)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}
