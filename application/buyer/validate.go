package buyer

import (
	stderrors "errors"
	"fmt"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	validatorx "github.com/krishsharda/Buyer-Leads/utils/validator"
)

const (
	tagBuyerEnum    = "buyerenum"
	tagBHKRequired  = "bhkrequired"
	tagBHKForbidden = "bhkforbidden"
	tagBudgetOrder  = "budgetorder"
)

var buyerValidate = newBuyerValidate()

func newBuyerValidate() *gpvalidator.Validate {
	v := validatorx.New()
	_ = v.RegisterValidation(tagBuyerEnum, func(fl gpvalidator.FieldLevel) bool {
		return constant.IsEnumMember(fl.Param(), fl.Field().String())
	})
	v.RegisterStructValidation(buyerStructLevel, model.Buyer{})
	v.RegisterStructValidation(filterStructLevel, model.BuyerFilter{})
	return v
}

func buyerStructLevel(sl gpvalidator.StructLevel) {
	b := sl.Current().Interface().(model.Buyer)

	if constant.RequiresBHK(b.PropertyType) && b.BHK == nil {
		sl.ReportError(b.BHK, constant.FieldBHK, "BHK", tagBHKRequired, "")
	}
	if !constant.RequiresBHK(b.PropertyType) && b.BHK != nil {
		sl.ReportError(b.BHK, constant.FieldBHK, "BHK", tagBHKForbidden, "")
	}
	if b.BudgetMin != nil && b.BudgetMax != nil && *b.BudgetMax < *b.BudgetMin {
		sl.ReportError(b.BudgetMax, constant.FieldBudgetMax, "BudgetMax", tagBudgetOrder, "")
	}
}

func filterStructLevel(sl gpvalidator.StructLevel) {
	f := sl.Current().Interface().(model.BuyerFilter)
	if f.BudgetMin != nil && f.BudgetMax != nil && *f.BudgetMax < *f.BudgetMin {
		sl.ReportError(f.BudgetMax, "budgetMax", "BudgetMax", tagBudgetOrder, "")
	}
}

// Validate checks every field and cross-field rule of a buyer and returns a
// validation CustomError listing all violations, or nil.
func Validate(b *model.Buyer) error {
	return runValidation(b)
}

// ValidateFilter checks list query parameters.
func ValidateFilter(f *model.BuyerFilter) error {
	return runValidation(f)
}

func runValidation(s any) error {
	err := buyerValidate.Struct(s)
	if err == nil {
		return nil
	}
	var ves gpvalidator.ValidationErrors
	if !stderrors.As(err, &ves) {
		return err
	}
	violations := make([]errors.FieldViolation, 0, len(ves))
	for _, fe := range ves {
		violations = append(violations, errors.FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return errors.SetValidationError(violations)
}

var enumMessages = map[string]string{
	constant.FieldCity:         "Please select a valid city",
	constant.FieldPropertyType: "Please select a valid property type",
	constant.FieldBHK:          "Please select a valid BHK configuration",
	constant.FieldPurpose:      "Please select Buy or Rent",
	constant.FieldTimeline:     "Please select a valid timeline",
	constant.FieldSource:       "Please select a valid source",
	constant.FieldStatus:       "Please select a valid status",
}

func violationMessage(field, tag, param string) string {
	switch tag {
	case tagBuyerEnum:
		return enumMessages[param]
	case tagBHKRequired:
		return "BHK is required for Apartments and Villas"
	case tagBHKForbidden:
		return "BHK is only allowed for Apartments and Villas"
	case tagBudgetOrder:
		return "Maximum budget must be greater than or equal to minimum budget"
	case "email":
		return "Please enter a valid email address"
	}

	if strings.HasPrefix(field, constant.FieldTags+"[") {
		return "Tags must not be empty"
	}

	switch field + "." + tag {
	case "fullName.min":
		return "Full name must be at least 2 characters"
	case "fullName.max":
		return "Full name must not exceed 80 characters"
	case "phone.min":
		return "Phone number must be at least 10 digits"
	case "phone.max":
		return "Phone number must not exceed 15 digits"
	case "phone.number":
		return "Phone number must contain only digits"
	case "budgetMin.min", "budgetMax.min":
		return "Budget must be a positive number"
	case "budgetMin.max", "budgetMax.max":
		return "Budget seems unreasonably high"
	case "notes.max":
		return "Notes must not exceed 1000 characters"
	case "tags.max":
		return "Maximum 10 tags allowed"
	case "page.min":
		return "Page must be at least 1"
	case "pageSize.min", "pageSize.max":
		return "Page size must be between 1 and 50"
	case "sortBy.oneof":
		return "Sort by must be one of updatedAt, createdAt, fullName"
	case "sortOrder.oneof":
		return "Sort order must be asc or desc"
	}
	return fmt.Sprintf("%s is invalid (%s)", field, tag)
}
