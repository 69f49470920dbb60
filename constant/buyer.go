package constant

// Buyer field names as they appear in JSON payloads, validation errors and
// audit diffs.
const (
	FieldFullName     = "fullName"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldCity         = "city"
	FieldPropertyType = "propertyType"
	FieldBHK          = "bhk"
	FieldPurpose      = "purpose"
	FieldBudgetMin    = "budgetMin"
	FieldBudgetMax    = "budgetMax"
	FieldTimeline     = "timeline"
	FieldSource       = "source"
	FieldStatus       = "status"
	FieldNotes        = "notes"
	FieldTags         = "tags"
	FieldOwnerID      = "ownerId"
	FieldUpdatedAt    = "updatedAt"

	// FieldCreated is the single diff key of the audit entry written on create.
	FieldCreated = "created"
)

// BuyerFields lists the mutable buyer fields in a stable order.
var BuyerFields = []string{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldCity,
	FieldPropertyType,
	FieldBHK,
	FieldPurpose,
	FieldBudgetMin,
	FieldBudgetMax,
	FieldTimeline,
	FieldSource,
	FieldStatus,
	FieldNotes,
	FieldTags,
	FieldOwnerID,
}

var (
	Cities        = []string{"Chandigarh", "Mohali", "Zirakpur", "Panchkula", "Other"}
	PropertyTypes = []string{"Apartment", "Villa", "Plot", "Office", "Retail"}
	BHKs          = []string{"1", "2", "3", "4", "Studio"}
	Purposes      = []string{"Buy", "Rent"}
	Timelines     = []string{"0-3m", "3-6m", ">6m", "Exploring"}
	Sources       = []string{"Website", "Referral", "Walk-in", "Call", "Other"}
	Statuses      = []string{"New", "Qualified", "Contacted", "Visited", "Negotiation", "Converted", "Dropped"}
)

// BuyerEnums maps an enum-backed field to its allowed values.
var BuyerEnums = map[string][]string{
	FieldCity:         Cities,
	FieldPropertyType: PropertyTypes,
	FieldBHK:          BHKs,
	FieldPurpose:      Purposes,
	FieldTimeline:     Timelines,
	FieldSource:       Sources,
	FieldStatus:       Statuses,
}

// BuyerEnumDefaults is substituted for unrecognized enum values under the
// lenient normalization policy.
var BuyerEnumDefaults = map[string]string{
	FieldCity:         "Other",
	FieldPropertyType: "Apartment",
	FieldBHK:          "2",
	FieldPurpose:      "Buy",
	FieldTimeline:     "3-6m",
	FieldSource:       "Website",
	FieldStatus:       StatusNew,
}

const (
	StatusNew       = "New"
	StatusConverted = "Converted"

	// UnknownBuyerName replaces an empty name under the lenient policy.
	UnknownBuyerName = "Unknown User"
)

// ResidentialPropertyTypes require a BHK configuration.
var ResidentialPropertyTypes = []string{"Apartment", "Villa"}

// IsEnumMember reports whether value belongs to the enum of field.
func IsEnumMember(field, value string) bool {
	for _, v := range BuyerEnums[field] {
		if v == value {
			return true
		}
	}
	return false
}

func RequiresBHK(propertyType string) bool {
	for _, t := range ResidentialPropertyTypes {
		if t == propertyType {
			return true
		}
	}
	return false
}

// Buyer event routing keys on the buyer_events exchange.
const (
	EventBuyerCreated = "buyer.created"
	EventBuyerUpdated = "buyer.updated"
	EventBuyerDeleted = "buyer.deleted"
)
