package model

// BuyerFilter holds the list query. Empty strings and nil pointers mean
// "no filter".
type BuyerFilter struct {
	Search       string `json:"search"`
	City         string `json:"city" validate:"omitempty,buyerenum=city"`
	PropertyType string `json:"propertyType" validate:"omitempty,buyerenum=propertyType"`
	Status       string `json:"status" validate:"omitempty,buyerenum=status"`
	Timeline     string `json:"timeline" validate:"omitempty,buyerenum=timeline"`
	Purpose      string `json:"purpose" validate:"omitempty,buyerenum=purpose"`
	BHK          string `json:"bhk" validate:"omitempty,buyerenum=bhk"`
	OwnerID      string `json:"ownerId"`
	BudgetMin    *int64 `json:"budgetMin" validate:"omitempty,min=0"`
	BudgetMax    *int64 `json:"budgetMax" validate:"omitempty,min=0"`

	Page      int    `json:"page" validate:"min=1"`
	PageSize  int    `json:"pageSize" validate:"min=1,max=50"`
	SortBy    string `json:"sortBy" validate:"oneof=updatedAt createdAt fullName"`
	SortOrder string `json:"sortOrder" validate:"oneof=asc desc"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 50

	SortByUpdatedAt = "updatedAt"
	SortByCreatedAt = "createdAt"
	SortByFullName  = "fullName"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortColumn returns the column for SortBy.
func (f *BuyerFilter) SortColumn() string {
	switch f.SortBy {
	case SortByCreatedAt:
		return "created_at"
	case SortByFullName:
		return "full_name"
	default:
		return "updated_at"
	}
}

// WithDefaults fills paging and sorting left empty by the caller.
func (f *BuyerFilter) WithDefaults() {
	if f.Page == 0 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.SortBy == "" {
		f.SortBy = SortByUpdatedAt
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
}

// Offset of the current page.
func (f *BuyerFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
