package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawField is a loosely typed input value. It accepts JSON strings, numbers,
// booleans and null, and remembers whether the key was present at all.
type RawField struct {
	Present bool
	Null    bool
	Value   string
}

// Raw builds a present, non-null field.
func Raw(value string) RawField {
	return RawField{Present: true, Value: value}
}

func (f *RawField) UnmarshalJSON(b []byte) error {
	f.Present = true
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		f.Null = true
		f.Value = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.Value = s
		return nil
	}
	// numbers, booleans and anything else keep their literal text
	f.Value = string(b)
	return nil
}

// RawTags accepts a JSON array or a comma-separated string.
type RawTags struct {
	Present bool
	Values  []string
}

func RawTagList(values ...string) RawTags {
	return RawTags{Present: true, Values: values}
}

func (t *RawTags) UnmarshalJSON(b []byte) error {
	t.Present = true
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		t.Values = nil
	case len(b) > 0 && b[0] == '[':
		var items []any
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		t.Values = make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok {
				t.Values = append(t.Values, s)
				continue
			}
			t.Values = append(t.Values, fmt.Sprint(it))
		}
	default:
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.Values = SplitTags(s)
	}
	return nil
}

// SplitTags splits a comma-separated tag string.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// BuyerInput is the raw payload of a create or update.
type BuyerInput struct {
	FullName     RawField `json:"fullName"`
	Email        RawField `json:"email"`
	Phone        RawField `json:"phone"`
	City         RawField `json:"city"`
	PropertyType RawField `json:"propertyType"`
	BHK          RawField `json:"bhk"`
	Purpose      RawField `json:"purpose"`
	BudgetMin    RawField `json:"budgetMin"`
	BudgetMax    RawField `json:"budgetMax"`
	Timeline     RawField `json:"timeline"`
	Source       RawField `json:"source"`
	Status       RawField `json:"status"`
	Notes        RawField `json:"notes"`
	Tags         RawTags  `json:"tags"`
	OwnerID      RawField `json:"ownerId"`
}

// UpdateBuyerRequest carries the updatedAt the client last observed.
type UpdateBuyerRequest struct {
	BuyerInput
	UpdatedAt ObservedTime `json:"updatedAt"`
}

// ObservedTime accepts an RFC 3339 string or an epoch number (seconds, or
// milliseconds when the value is too large to be seconds).
type ObservedTime struct {
	Time *time.Time
}

func (o *ObservedTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		o.Time = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			o.Time = nil
			return nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			o.Time = &t
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("updatedAt: %w", err)
	}
	t := EpochToTime(n)
	o.Time = &t
	return nil
}

// EpochToTime treats values above 1e12 as milliseconds.
func EpochToTime(n int64) time.Time {
	if n > 1_000_000_000_000 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
