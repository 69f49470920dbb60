package buyer

import (
	"reflect"

	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
)

// ChangeSet diffs the supplied fields of proposed against existing. Fields
// the draft does not carry are left out; tags compare without order.
func ChangeSet(existing *model.Buyer, proposed *Draft) model.ChangeSet {
	changes := model.ChangeSet{}
	for _, field := range proposed.Fields() {
		oldVal := existing.FieldValue(field)
		newVal := proposed.Values.FieldValue(field)

		if field == constant.FieldTags {
			if sameTags(existing.Tags, proposed.Values.Tags) {
				continue
			}
		} else if reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		changes[field] = model.FieldChange{Old: oldVal, New: newVal}
	}
	return changes
}

// sameTags compares tags as a multiset: order is ignored, repeats count.
func sameTags(a, b model.Tags) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[string]int, len(a))
	for _, t := range a {
		count[t]++
	}
	for _, t := range b {
		if count[t] == 0 {
			return false
		}
		count[t]--
	}
	return true
}

// Snapshot is the diff of a freshly created record.
func Snapshot(b *model.Buyer) model.ChangeSet {
	return model.ChangeSet{
		constant.FieldCreated: {Old: nil, New: b},
	}
}
