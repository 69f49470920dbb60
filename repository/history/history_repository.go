package history

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/krishsharda/Buyer-Leads/model"
)

type SQL struct {
	conn *sqlx.DB
}

// HistoryRepository stores the append-only audit trail of buyers.
type HistoryRepository interface {
	Append(ctx context.Context, entry *model.BuyerHistory) error
	ListByBuyer(ctx context.Context, buyerID string, limit int) ([]model.BuyerHistory, error)
	DeleteByBuyerTx(ctx context.Context, tx *sqlx.Tx, buyerID string) error
}

func NewHistoryRepository(conn *sqlx.DB) HistoryRepository {
	return &SQL{conn: conn}
}

const (
	insertHistoryQuery   = `INSERT INTO buyer_history (id, buyer_id, changed_by, changed_at, diff) VALUES (?, ?, ?, ?, ?)`
	listHistoryByBuyer   = `SELECT id, buyer_id, changed_by, changed_at, diff FROM buyer_history WHERE buyer_id = ? ORDER BY changed_at DESC, id DESC LIMIT ?`
	deleteHistoryByBuyer = `DELETE FROM buyer_history WHERE buyer_id = ?`
)

func (s *SQL) Append(ctx context.Context, entry *model.BuyerHistory) error {
	_, err := s.conn.ExecContext(ctx, insertHistoryQuery, entry.ID, entry.BuyerID, entry.ChangedBy, entry.ChangedAt, entry.Diff)
	return err
}

func (s *SQL) ListByBuyer(ctx context.Context, buyerID string, limit int) ([]model.BuyerHistory, error) {
	rows, err := s.conn.QueryxContext(ctx, listHistoryByBuyer, buyerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.BuyerHistory, 0)
	for rows.Next() {
		var entry model.BuyerHistory
		if err := rows.StructScan(&entry); err != nil {
			return nil, err
		}
		res = append(res, entry)
	}
	return res, rows.Err()
}

func (s *SQL) DeleteByBuyerTx(ctx context.Context, tx *sqlx.Tx, buyerID string) error {
	_, err := tx.ExecContext(ctx, deleteHistoryByBuyer, buyerID)
	return err
}
