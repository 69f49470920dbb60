package buyer

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type BuyerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Buyer, error)
	Create(ctx context.Context, data *model.Buyer) (*model.Buyer, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.Buyer) error
	Update(ctx context.Context, req *model.BuyerUpdate) (*model.Buyer, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error)
	List(ctx context.Context, filter *model.BuyerFilter) ([]model.Buyer, int64, error)
}

func NewBuyerRepository(conn *sqlx.DB) BuyerRepository {
	return &SQL{conn: conn}
}

const (
	buyerTable   = "buyer"
	buyerColumns = `id, full_name, email, phone, city, property_type, bhk, purpose, budget_min, budget_max,
timeline, source, status, notes, tags, owner_id, created_at, updated_at`

	getBuyerByID = `SELECT ` + buyerColumns + ` FROM buyer WHERE id = ?`

	insertBuyerQuery = `INSERT INTO buyer (` + buyerColumns + `)
VALUES (:id, :full_name, :email, :phone, :city, :property_type, :bhk, :purpose, :budget_min, :budget_max,
:timeline, :source, :status, :notes, :tags, :owner_id, :created_at, :updated_at)`

	deleteBuyerQuery = `DELETE FROM buyer WHERE id = ?`
)

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Buyer, error) {
	var entity model.Buyer
	if err := s.conn.QueryRowxContext(ctx, getBuyerByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.Buyer) (*model.Buyer, error) {
	data.Tags = data.Tags.OrEmpty()
	if _, err := s.conn.NamedExecContext(ctx, insertBuyerQuery, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.Buyer) error {
	data.Tags = data.Tags.OrEmpty()
	_, err := tx.NamedExecContext(ctx, insertBuyerQuery, data)
	return err
}

// Update writes only the given columns. The row must still carry the
// updated_at the caller read, otherwise someone else wrote in between and a
// conflict is returned.
func (s *SQL) Update(ctx context.Context, req *model.BuyerUpdate) (*model.Buyer, error) {
	query, args, err := sq.Update(buyerTable).
		SetMap(req.Columns).
		Set("updated_at", req.UpdatedAt).
		Where(sq.Eq{"id": req.ID, "updated_at": req.ExpectedUpdatedAt}).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	updated, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return updated, nil
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	result, err := tx.ExecContext(ctx, deleteBuyerQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) List(ctx context.Context, filter *model.BuyerFilter) ([]model.Buyer, int64, error) {
	where := buildWhere(filter)

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(buyerTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	order := "DESC"
	if filter.SortOrder == model.SortAsc {
		order = "ASC"
	}
	builder := sq.Select(buyerColumns).
		From(buyerTable).
		Where(where).
		OrderBy(filter.SortColumn()+" "+order, "id "+order)
	if filter.PageSize > 0 {
		builder = builder.Limit(uint64(filter.PageSize)).Offset(uint64(filter.Offset()))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.Buyer, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func buildWhere(filter *model.BuyerFilter) sq.And {
	where := sq.And{}

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.Like{"full_name": term},
			sq.Like{"phone": term},
			sq.Like{"email": term},
		})
	}

	eq := sq.Eq{}
	for col, val := range map[string]string{
		"city":          filter.City,
		"property_type": filter.PropertyType,
		"status":        filter.Status,
		"timeline":      filter.Timeline,
		"purpose":       filter.Purpose,
		"bhk":           filter.BHK,
		"owner_id":      filter.OwnerID,
	} {
		if val != "" {
			eq[col] = val
		}
	}
	if len(eq) > 0 {
		where = append(where, eq)
	}

	// budget ranges overlap when neither side excludes the other
	if filter.BudgetMin != nil {
		where = append(where, sq.Or{sq.Eq{"budget_max": nil}, sq.GtOrEq{"budget_max": *filter.BudgetMin}})
	}
	if filter.BudgetMax != nil {
		where = append(where, sq.Or{sq.Eq{"budget_min": nil}, sq.LtOrEq{"budget_min": *filter.BudgetMax}})
	}

	return where
}
