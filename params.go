package razorpay

import "github.com/samber/lo"

// Notes is arbitrary caller-supplied string metadata attached to many
// entities. On the wire it is flattened into notes[<key>] fields.
type Notes map[string]string

const (
	defaultListCount = 10
	defaultListSkip  = 0
)

// ListOptions are the filter options shared by every listing operation.
// From and To accept epoch seconds, a numeric string, a date string
// (RFC 3339 or calendar date) or a time.Time. Count defaults to 10 and
// Skip to 0. Extra fields are passed through to the wire unchanged.
type ListOptions struct {
	From  any
	To    any
	Count int
	Skip  int
	Extra map[string]any
}

func (o *ListOptions) query() map[string]any {
	q := map[string]any{
		"count": defaultListCount,
		"skip":  defaultListSkip,
	}
	if o == nil {
		return q
	}
	if o.From != nil {
		q["from"] = normalizeDate(o.From)
	}
	if o.To != nil {
		q["to"] = normalizeDate(o.To)
	}
	if o.Count > 0 {
		q["count"] = o.Count
	}
	if o.Skip > 0 {
		q["skip"] = o.Skip
	}
	return lo.Assign(q, o.Extra)
}

// Collection is the envelope the API returns for listing operations.
type Collection[T any] struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
	Items  []T    `json:"items"`
}

// withNotes merges a flattened notes mapping into a request payload.
func withNotes(payload map[string]any, notes Notes) map[string]any {
	return lo.Assign(payload, normalizeNotes(notes))
}
