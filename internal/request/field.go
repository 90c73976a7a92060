package request

import "googleapi-client/internal/platform/apperr"

// Rule is a single validation check evaluated against a request's current
// field state. A zero Rule always passes.
type Rule struct {
	failed  bool
	kind    apperr.Kind
	message string
}

// Check fails with kind and message when ok is false.
func Check(ok bool, kind apperr.Kind, message string) Rule {
	return Rule{failed: !ok, kind: kind, message: message}
}

// Required fails when s is empty.
func Required(s string, kind apperr.Kind, message string) Rule {
	return Check(s != "", kind, message)
}

// Less fails unless n < limit (exclusive upper bound).
func Less(n, limit int, kind apperr.Kind, message string) Rule {
	return Check(n < limit, kind, message)
}

// AtMost fails unless n <= limit.
func AtMost(n, limit int, kind apperr.Kind, message string) Rule {
	return Check(n <= limit, kind, message)
}

// Between fails unless lo <= v <= hi.
func Between[T int | float64](v, lo, hi T, kind apperr.Kind, message string) Rule {
	return Check(v >= lo && v <= hi, kind, message)
}

func (r Rule) err(field string) error {
	if !r.failed {
		return nil
	}
	return apperr.New(r.kind, r.message).WithField(field)
}

// Field declares one query parameter: the rules guarding it and its
// serialized value(s). Empty values are left out of the query string.
// A Field with no Name only contributes rules.
type Field struct {
	Name   string
	Rules  []Rule
	Value  string
	Values []string // repeated parameter, one pair per entry
}

// KeyField is the API key parameter shared by every keyed endpoint.
func KeyField(key string) Field {
	return Field{
		Name:  "key",
		Rules: []Rule{Required(key, apperr.KindMissingKey, "Key is required")},
		Value: key,
	}
}

// Build validates fields in declaration order and serializes them.
// The first failing rule wins and no parameters are returned.
func Build(fields ...Field) (*Params, error) {
	for _, f := range fields {
		for _, r := range f.Rules {
			if err := r.err(f.Name); err != nil {
				return nil, err
			}
		}
	}

	params := &Params{}
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		if f.Value != "" {
			params.Add(f.Name, f.Value)
		}
		for _, v := range f.Values {
			if v != "" {
				params.Add(f.Name, v)
			}
		}
	}

	return params, nil
}
