package buyer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
)

// Policy decides what the normalizer does with values it cannot make sense
// of. Strict keeps them so the validator rejects them, lenient substitutes
// documented defaults.
type Policy string

const (
	PolicyStrict  Policy = "strict"
	PolicyLenient Policy = "lenient"
)

// ParsePolicy defaults to strict for anything but "lenient".
func ParsePolicy(s string) Policy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicyLenient)) {
		return PolicyLenient
	}
	return PolicyStrict
}

// UnrecognizedValueError reports an enum value outside its enum.
type UnrecognizedValueError struct {
	Field   string
	Value   string
	Default string
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("%s: unrecognized value %q", e.Field, e.Value)
}

// NormalizeEnum matches raw against the enum of field, ignoring case and
// surrounding space. A miss returns the trimmed raw value together with an
// *UnrecognizedValueError naming the field default.
func NormalizeEnum(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	for _, v := range constant.BuyerEnums[field] {
		if strings.EqualFold(v, value) {
			return v, nil
		}
	}
	return value, &UnrecognizedValueError{
		Field:   field,
		Value:   value,
		Default: constant.BuyerEnumDefaults[field],
	}
}

// NormalizePhone keeps ASCII digits only.
func NormalizePhone(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NormalizeBudget strips currency symbols, separators and spaces and rounds
// the number. Anything unparsable is absent.
func NormalizeBudget(raw string) *int64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == '_' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, raw)
	if cleaned == "" {
		return nil
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	f = math.Round(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	n := int64(f)
	return &n
}

// NormalizeTags trims every tag. The lenient policy drops blank ones.
func NormalizeTags(values []string, policy Policy) model.Tags {
	res := make(model.Tags, 0, len(values))
	for _, t := range values {
		t = strings.TrimSpace(t)
		if t == "" && policy == PolicyLenient {
			continue
		}
		res = append(res, t)
	}
	return res
}

// Normalize turns raw input into a Draft. It never fails; enum misses are
// returned next to the draft and, under the lenient policy, already replaced
// by their defaults.
func Normalize(in *model.BuyerInput, policy Policy) (*Draft, []*UnrecognizedValueError) {
	d := newDraft()
	var unrecognized []*UnrecognizedValueError

	enum := func(field string, raw model.RawField, dst *string) {
		if !raw.Present {
			return
		}
		d.mark(field)
		value, err := NormalizeEnum(field, raw.Value)
		if err != nil {
			uv := err.(*UnrecognizedValueError)
			unrecognized = append(unrecognized, uv)
			if policy == PolicyLenient {
				value = uv.Default
			}
		}
		*dst = value
	}
	optional := func(field string, raw model.RawField, dst **string) {
		if !raw.Present {
			return
		}
		d.mark(field)
		if s := strings.TrimSpace(raw.Value); s != "" {
			*dst = &s
		}
	}
	budget := func(field string, raw model.RawField, dst **int64) {
		if !raw.Present {
			return
		}
		d.mark(field)
		*dst = NormalizeBudget(raw.Value)
	}

	v := &d.Values

	if in.FullName.Present {
		d.mark(constant.FieldFullName)
		v.FullName = strings.TrimSpace(in.FullName.Value)
		if v.FullName == "" && policy == PolicyLenient {
			v.FullName = constant.UnknownBuyerName
		}
	}
	optional(constant.FieldEmail, in.Email, &v.Email)
	if in.Phone.Present {
		d.mark(constant.FieldPhone)
		v.Phone = NormalizePhone(in.Phone.Value)
	}
	enum(constant.FieldCity, in.City, &v.City)
	enum(constant.FieldPropertyType, in.PropertyType, &v.PropertyType)
	if in.BHK.Present {
		d.mark(constant.FieldBHK)
		if strings.TrimSpace(in.BHK.Value) != "" {
			var bhk string
			enum(constant.FieldBHK, in.BHK, &bhk)
			v.BHK = &bhk
		}
	}
	enum(constant.FieldPurpose, in.Purpose, &v.Purpose)
	budget(constant.FieldBudgetMin, in.BudgetMin, &v.BudgetMin)
	budget(constant.FieldBudgetMax, in.BudgetMax, &v.BudgetMax)
	enum(constant.FieldTimeline, in.Timeline, &v.Timeline)
	enum(constant.FieldSource, in.Source, &v.Source)
	enum(constant.FieldStatus, in.Status, &v.Status)
	optional(constant.FieldNotes, in.Notes, &v.Notes)
	if in.Tags.Present {
		d.mark(constant.FieldTags)
		v.Tags = NormalizeTags(in.Tags.Values, policy)
	}
	if in.OwnerID.Present {
		d.mark(constant.FieldOwnerID)
		v.OwnerID = strings.TrimSpace(in.OwnerID.Value)
	}

	return d, unrecognized
}

// NewRecord completes a draft into a record for insertion. Status defaults
// to New and tags to empty; the lenient policy also fills absent enums and
// the name.
func NewRecord(d *Draft, policy Policy) *model.Buyer {
	b := d.Values
	b.Tags = b.Tags.OrEmpty()

	if !d.Has(constant.FieldStatus) || b.Status == "" {
		b.Status = constant.StatusNew
	}
	if policy != PolicyLenient {
		return &b
	}

	if b.FullName == "" {
		b.FullName = constant.UnknownBuyerName
	}
	for field, dst := range map[string]*string{
		constant.FieldCity:         &b.City,
		constant.FieldPropertyType: &b.PropertyType,
		constant.FieldPurpose:      &b.Purpose,
		constant.FieldTimeline:     &b.Timeline,
		constant.FieldSource:       &b.Source,
	} {
		if !d.Has(field) {
			*dst = constant.BuyerEnumDefaults[field]
		}
	}
	if b.BHK == nil && constant.RequiresBHK(b.PropertyType) {
		bhk := constant.BuyerEnumDefaults[constant.FieldBHK]
		b.BHK = &bhk
	}
	return &b
}
