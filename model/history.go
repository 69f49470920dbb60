package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// FieldChange is the before/after value of one field.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// ChangeSet maps field name to its change; stored as a JSON object.
type ChangeSet map[string]FieldChange

func (c ChangeSet) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]FieldChange(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ChangeSet) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = ChangeSet{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("diff: unsupported column type")
	}
	out := ChangeSet{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
	}
	*c = out
	return nil
}

// Fields returns the changed field names.
func (c ChangeSet) Fields() []string {
	res := make([]string, 0, len(c))
	for k := range c {
		res = append(res, k)
	}
	return res
}

// BuyerHistory is one append-only audit entry of a buyer.
type BuyerHistory struct {
	ID        string    `db:"id" json:"id"`
	BuyerID   string    `db:"buyer_id" json:"buyerId"`
	ChangedBy string    `db:"changed_by" json:"changedBy"`
	ChangedAt time.Time `db:"changed_at" json:"changedAt"`
	Diff      ChangeSet `db:"diff" json:"diff"`
}
