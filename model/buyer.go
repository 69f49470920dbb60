package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/krishsharda/Buyer-Leads/constant"
)

// Buyer is a lead tracked by an agent. Validation tags are evaluated by the
// buyer validator, which also registers the buyerenum tag and the
// cross-field rules.
type Buyer struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName" validate:"min=2,max=80"`
	Email        *string   `db:"email" json:"email" validate:"omitempty,email"`
	Phone        string    `db:"phone" json:"phone" validate:"min=10,max=15,number"`
	City         string    `db:"city" json:"city" validate:"buyerenum=city"`
	PropertyType string    `db:"property_type" json:"propertyType" validate:"buyerenum=propertyType"`
	BHK          *string   `db:"bhk" json:"bhk" validate:"omitempty,buyerenum=bhk"`
	Purpose      string    `db:"purpose" json:"purpose" validate:"buyerenum=purpose"`
	BudgetMin    *int64    `db:"budget_min" json:"budgetMin" validate:"omitempty,min=0,max=1000000000"`
	BudgetMax    *int64    `db:"budget_max" json:"budgetMax" validate:"omitempty,min=0,max=1000000000"`
	Timeline     string    `db:"timeline" json:"timeline" validate:"buyerenum=timeline"`
	Source       string    `db:"source" json:"source" validate:"buyerenum=source"`
	Status       string    `db:"status" json:"status" validate:"buyerenum=status"`
	Notes        *string   `db:"notes" json:"notes" validate:"omitempty,max=1000"`
	Tags         Tags      `db:"tags" json:"tags" validate:"max=10,dive,notblank"`
	OwnerID      string    `db:"owner_id" json:"ownerId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// BuyerColumns maps buyer field names to table columns.
var BuyerColumns = map[string]string{
	constant.FieldFullName:     "full_name",
	constant.FieldEmail:        "email",
	constant.FieldPhone:        "phone",
	constant.FieldCity:         "city",
	constant.FieldPropertyType: "property_type",
	constant.FieldBHK:          "bhk",
	constant.FieldPurpose:      "purpose",
	constant.FieldBudgetMin:    "budget_min",
	constant.FieldBudgetMax:    "budget_max",
	constant.FieldTimeline:     "timeline",
	constant.FieldSource:       "source",
	constant.FieldStatus:       "status",
	constant.FieldNotes:        "notes",
	constant.FieldTags:         "tags",
	constant.FieldOwnerID:      "owner_id",
}

// FieldValue returns the plain value of a field: nil for an absent optional, the
// dereferenced value otherwise, and []string for tags.
func (b *Buyer) FieldValue(field string) any {
	switch field {
	case constant.FieldFullName:
		return b.FullName
	case constant.FieldEmail:
		return derefString(b.Email)
	case constant.FieldPhone:
		return b.Phone
	case constant.FieldCity:
		return b.City
	case constant.FieldPropertyType:
		return b.PropertyType
	case constant.FieldBHK:
		return derefString(b.BHK)
	case constant.FieldPurpose:
		return b.Purpose
	case constant.FieldBudgetMin:
		return derefInt(b.BudgetMin)
	case constant.FieldBudgetMax:
		return derefInt(b.BudgetMax)
	case constant.FieldTimeline:
		return b.Timeline
	case constant.FieldSource:
		return b.Source
	case constant.FieldStatus:
		return b.Status
	case constant.FieldNotes:
		return derefString(b.Notes)
	case constant.FieldTags:
		return []string(b.Tags.OrEmpty())
	case constant.FieldOwnerID:
		return b.OwnerID
	}
	return nil
}

// ColumnValues returns column => value for the given fields, encoded for
// storage.
func (b *Buyer) ColumnValues(fields ...string) map[string]any {
	res := make(map[string]any, len(fields))
	for _, f := range fields {
		col, ok := BuyerColumns[f]
		if !ok {
			continue
		}
		if f == constant.FieldTags {
			res[col] = b.Tags.OrEmpty()
			continue
		}
		res[col] = b.FieldValue(f)
	}
	return res
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func derefInt(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

// BuyerUpdate is a partial update guarded by the updated_at value read
// before the change was computed.
type BuyerUpdate struct {
	ID                string
	Columns           map[string]any
	UpdatedAt         time.Time
	ExpectedUpdatedAt time.Time
}

// Tags is stored as a JSON array.
type Tags []string

// OrEmpty never returns nil so tags always encode as an array.
func (t Tags) OrEmpty() Tags {
	if t == nil {
		return Tags{}
	}
	return t
}

func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t.OrEmpty()))
}

func (t Tags) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(t.OrEmpty()))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("tags: unsupported column type")
	}
	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*t = Tags(out).OrEmpty()
	return nil
}

type BuyerListResponse struct {
	Items      []Buyer `json:"items"`
	TotalCount int64   `json:"totalCount"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	IDs      []string `json:"ids"`
}
