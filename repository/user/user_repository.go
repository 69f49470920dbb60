package user

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/krishsharda/Buyer-Leads/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (id, email, name, is_admin, created_at) VALUES (?, ?, ?, ?, ?)`
	getUserBase     = `SELECT id, email, name, is_admin, created_at FROM user WHERE true`

	mysqlDuplicateEntry = 1062
)

// ErrDuplicate is returned by Create when the email is already taken.
var ErrDuplicate = stderrors.New("user already exists")

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertUserQuery, data.ID, data.Email, data.Name, data.IsAdmin, data.CreatedAt)
	if err != nil {
		var me *mysql.MySQLError
		if stderrors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
