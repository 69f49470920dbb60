package buyer

import (
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
)

// Draft is a normalized input. Values holds the canonical values and the
// presence set tells which fields the caller actually sent; an absent field
// means "leave unchanged".
type Draft struct {
	Values  model.Buyer
	present map[string]bool
}

func newDraft() *Draft {
	return &Draft{present: make(map[string]bool)}
}

// Has reports whether field was supplied.
func (d *Draft) Has(field string) bool {
	return d.present[field]
}

func (d *Draft) mark(field string) {
	d.present[field] = true
}

// Unset forgets a supplied field.
func (d *Draft) Unset(field string) {
	delete(d.present, field)
}

// Fields returns the supplied fields in stable order.
func (d *Draft) Fields() []string {
	res := make([]string, 0, len(d.present))
	for _, f := range constant.BuyerFields {
		if d.present[f] {
			res = append(res, f)
		}
	}
	return res
}

// Apply returns a copy of existing with every supplied field overwritten.
func (d *Draft) Apply(existing *model.Buyer) *model.Buyer {
	merged := *existing
	merged.Tags = append(model.Tags(nil), existing.Tags...)
	v := d.Values

	for _, f := range d.Fields() {
		switch f {
		case constant.FieldFullName:
			merged.FullName = v.FullName
		case constant.FieldEmail:
			merged.Email = v.Email
		case constant.FieldPhone:
			merged.Phone = v.Phone
		case constant.FieldCity:
			merged.City = v.City
		case constant.FieldPropertyType:
			merged.PropertyType = v.PropertyType
		case constant.FieldBHK:
			merged.BHK = v.BHK
		case constant.FieldPurpose:
			merged.Purpose = v.Purpose
		case constant.FieldBudgetMin:
			merged.BudgetMin = v.BudgetMin
		case constant.FieldBudgetMax:
			merged.BudgetMax = v.BudgetMax
		case constant.FieldTimeline:
			merged.Timeline = v.Timeline
		case constant.FieldSource:
			merged.Source = v.Source
		case constant.FieldStatus:
			merged.Status = v.Status
		case constant.FieldNotes:
			merged.Notes = v.Notes
		case constant.FieldTags:
			merged.Tags = append(model.Tags{}, v.Tags...)
		case constant.FieldOwnerID:
			merged.OwnerID = v.OwnerID
		}
	}
	return &merged
}
