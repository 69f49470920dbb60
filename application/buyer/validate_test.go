package buyer

import (
	"strings"
	"testing"

	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuyer() *model.Buyer {
	return &model.Buyer{
		FullName:     "Asha Verma",
		Email:        strPtr("asha@example.com"),
		Phone:        "9876543210",
		City:         "Mohali",
		PropertyType: "Apartment",
		BHK:          strPtr("2"),
		Purpose:      "Buy",
		BudgetMin:    int64Ptr(4000000),
		BudgetMax:    int64Ptr(6000000),
		Timeline:     "0-3m",
		Source:       "Website",
		Status:       "New",
		Tags:         model.Tags{"hot"},
	}
}

func violationsOf(t *testing.T, err error) []errors.FieldViolation {
	t.Helper()
	var ce errors.CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, constant.ErrorTypeCode[constant.ErrValidation], ce.ErrorCode())
	return ce.Details()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *model.Buyer)
		want   []errors.FieldViolation
	}{
		{
			name:   "valid record",
			mutate: func(b *model.Buyer) {},
		},
		{
			name:   "two character name is long enough",
			mutate: func(b *model.Buyer) { b.FullName = "Jo" },
		},
		{
			name: "short name and short phone are both reported",
			mutate: func(b *model.Buyer) {
				b.FullName = "J"
				b.Phone = "123"
			},
			want: []errors.FieldViolation{
				{Field: "fullName", Message: "Full name must be at least 2 characters"},
				{Field: "phone", Message: "Phone number must be at least 10 digits"},
			},
		},
		{
			name:   "long name",
			mutate: func(b *model.Buyer) { b.FullName = strings.Repeat("a", 81) },
			want:   []errors.FieldViolation{{Field: "fullName", Message: "Full name must not exceed 80 characters"}},
		},
		{
			name:   "phone too long",
			mutate: func(b *model.Buyer) { b.Phone = strings.Repeat("9", 16) },
			want:   []errors.FieldViolation{{Field: "phone", Message: "Phone number must not exceed 15 digits"}},
		},
		{
			name:   "phone with letters",
			mutate: func(b *model.Buyer) { b.Phone = "98765abcde" },
			want:   []errors.FieldViolation{{Field: "phone", Message: "Phone number must contain only digits"}},
		},
		{
			name:   "bad email",
			mutate: func(b *model.Buyer) { b.Email = strPtr("asha@") },
			want:   []errors.FieldViolation{{Field: "email", Message: "Please enter a valid email address"}},
		},
		{
			name:   "email may be absent",
			mutate: func(b *model.Buyer) { b.Email = nil },
		},
		{
			name: "enums outside their sets",
			mutate: func(b *model.Buyer) {
				b.City = "Delhi"
				b.Purpose = "Lease"
				b.Timeline = "soon"
				b.Source = ""
				b.Status = "Won"
			},
			want: []errors.FieldViolation{
				{Field: "city", Message: "Please select a valid city"},
				{Field: "purpose", Message: "Please select Buy or Rent"},
				{Field: "timeline", Message: "Please select a valid timeline"},
				{Field: "source", Message: "Please select a valid source"},
				{Field: "status", Message: "Please select a valid status"},
			},
		},
		{
			name:   "apartment without bhk",
			mutate: func(b *model.Buyer) { b.BHK = nil },
			want:   []errors.FieldViolation{{Field: "bhk", Message: "BHK is required for Apartments and Villas"}},
		},
		{
			name: "villa without bhk",
			mutate: func(b *model.Buyer) {
				b.PropertyType = "Villa"
				b.BHK = nil
			},
			want: []errors.FieldViolation{{Field: "bhk", Message: "BHK is required for Apartments and Villas"}},
		},
		{
			name:   "bhk outside its set",
			mutate: func(b *model.Buyer) { b.BHK = strPtr("6") },
			want:   []errors.FieldViolation{{Field: "bhk", Message: "Please select a valid BHK configuration"}},
		},
		{
			name: "plot with bhk is rejected",
			mutate: func(b *model.Buyer) {
				b.PropertyType = "Plot"
				b.BHK = strPtr("2")
			},
			want: []errors.FieldViolation{{Field: "bhk", Message: "BHK is only allowed for Apartments and Villas"}},
		},
		{
			name: "office without bhk",
			mutate: func(b *model.Buyer) {
				b.PropertyType = "Office"
				b.BHK = nil
			},
		},
		{
			name:   "budget max below min",
			mutate: func(b *model.Buyer) { b.BudgetMax = int64Ptr(100) },
			want:   []errors.FieldViolation{{Field: "budgetMax", Message: "Maximum budget must be greater than or equal to minimum budget"}},
		},
		{
			name:   "equal budgets",
			mutate: func(b *model.Buyer) { b.BudgetMax = int64Ptr(4000000) },
		},
		{
			name: "only one budget",
			mutate: func(b *model.Buyer) {
				b.BudgetMin = nil
				b.BudgetMax = int64Ptr(10)
			},
		},
		{
			name:   "negative budget",
			mutate: func(b *model.Buyer) { b.BudgetMin = int64Ptr(-1) },
			want:   []errors.FieldViolation{{Field: "budgetMin", Message: "Budget must be a positive number"}},
		},
		{
			name:   "unreasonable budget",
			mutate: func(b *model.Buyer) { b.BudgetMax = int64Ptr(1000000001) },
			want:   []errors.FieldViolation{{Field: "budgetMax", Message: "Budget seems unreasonably high"}},
		},
		{
			name:   "notes at the limit",
			mutate: func(b *model.Buyer) { b.Notes = strPtr(strings.Repeat("n", 1000)) },
		},
		{
			name:   "notes too long",
			mutate: func(b *model.Buyer) { b.Notes = strPtr(strings.Repeat("n", 1001)) },
			want:   []errors.FieldViolation{{Field: "notes", Message: "Notes must not exceed 1000 characters"}},
		},
		{
			name:   "ten tags",
			mutate: func(b *model.Buyer) { b.Tags = model.Tags(strings.Split("a,b,c,d,e,f,g,h,i,j", ",")) },
		},
		{
			name:   "eleven tags",
			mutate: func(b *model.Buyer) { b.Tags = model.Tags(strings.Split("a,b,c,d,e,f,g,h,i,j,k", ",")) },
			want:   []errors.FieldViolation{{Field: "tags", Message: "Maximum 10 tags allowed"}},
		},
		{
			name:   "blank tag",
			mutate: func(b *model.Buyer) { b.Tags = model.Tags{"hot", "  "} },
			want:   []errors.FieldViolation{{Field: "tags[1]", Message: "Tags must not be empty"}},
		},
		{
			name:   "duplicate tags are allowed",
			mutate: func(b *model.Buyer) { b.Tags = model.Tags{"hot", "hot"} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBuyer()
			tt.mutate(b)

			err := Validate(b)
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.want, violationsOf(t, err))
		})
	}
}

func TestValidate_BHKByPropertyType(t *testing.T) {
	for _, pt := range constant.PropertyTypes {
		t.Run(pt, func(t *testing.T) {
			without := validBuyer()
			without.PropertyType = pt
			without.BHK = nil

			with := validBuyer()
			with.PropertyType = pt
			with.BHK = strPtr("Studio")

			if constant.RequiresBHK(pt) {
				assert.Equal(t, []errors.FieldViolation{{Field: "bhk", Message: "BHK is required for Apartments and Villas"}}, violationsOf(t, Validate(without)))
				assert.NoError(t, Validate(with))
				return
			}
			assert.NoError(t, Validate(without))
			assert.Equal(t, "bhk", violationsOf(t, Validate(with))[0].Field)
		})
	}
}

func TestValidate_BudgetOrdering(t *testing.T) {
	pairs := [][2]int64{{0, 0}, {1, 2}, {5, 4}, {100, 99}, {7, 7}, {0, 1000000000}}
	for _, p := range pairs {
		b := validBuyer()
		b.BudgetMin, b.BudgetMax = int64Ptr(p[0]), int64Ptr(p[1])

		err := Validate(b)
		if p[0] <= p[1] {
			assert.NoError(t, err, "min=%d max=%d", p[0], p[1])
			continue
		}
		assert.Equal(t, "budgetMax", violationsOf(t, err)[0].Field)
	}
}

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter model.BuyerFilter
		want   []string
	}{
		{name: "defaults", filter: model.BuyerFilter{}},
		{name: "all filters", filter: model.BuyerFilter{City: "Panchkula", PropertyType: "Plot", Status: "Visited", Timeline: ">6m", Purpose: "Rent", BHK: "Studio", SortBy: "fullName", SortOrder: "asc"}},
		{name: "bad enums", filter: model.BuyerFilter{City: "Delhi", Status: "Won"}, want: []string{"city", "status"}},
		{name: "page size too big", filter: model.BuyerFilter{PageSize: 51}, want: []string{"pageSize"}},
		{name: "negative page", filter: model.BuyerFilter{Page: -1}, want: []string{"page"}},
		{name: "bad sort", filter: model.BuyerFilter{SortBy: "phone", SortOrder: "up"}, want: []string{"sortBy", "sortOrder"}},
		{name: "inverted budget", filter: model.BuyerFilter{BudgetMin: int64Ptr(10), BudgetMax: int64Ptr(5)}, want: []string{"budgetMax"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			f.WithDefaults()

			err := ValidateFilter(&f)
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			var fields []string
			for _, v := range violationsOf(t, err) {
				fields = append(fields, v.Field)
			}
			assert.ElementsMatch(t, tt.want, fields)
		})
	}
}
