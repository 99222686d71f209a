package query

import (
	"strconv"

	"screenfeed/models"
)

// numericPredicateFields are the two reserved fields whose expected
// values arrive as strings but compare as numbers.
var numericPredicateFields = map[string]bool{
	"seasonNumber":  true,
	"episodeNumber": true,
}

// Filter returns the records matching every predicate. A record matches a
// predicate when it carries the field and the value compares equal to the
// expected value after coercion; a record lacking a referenced field is
// excluded. An empty predicate set filters nothing.
func Filter(records []models.Record, predicates map[string]string) []models.Record {
	if len(predicates) == 0 {
		return records
	}

	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, predicates) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesAll(rec models.Record, predicates map[string]string) bool {
	for field, want := range predicates {
		got, ok := rec.Field(field)
		if !ok {
			return false
		}
		if !matchValue(got, coerce(field, want)) {
			return false
		}
	}
	return true
}

// coerce applies the two expected-value coercions: the literal "true"
// becomes boolean true, and the reserved numeric fields parse as integers.
// Values that fail to parse stay strings and compare as such.
func coerce(field, want string) any {
	if want == "true" {
		return true
	}
	if numericPredicateFields[field] {
		if n, err := strconv.Atoi(want); err == nil {
			return n
		}
	}
	return want
}

func matchValue(got, want any) bool {
	switch g := got.(type) {
	case string:
		w, ok := want.(string)
		return ok && g == w
	case bool:
		w, ok := want.(bool)
		return ok && g == w
	case int:
		switch w := want.(type) {
		case int:
			return g == w
		case string:
			return strconv.Itoa(g) == w
		}
	case int64:
		switch w := want.(type) {
		case int:
			return g == int64(w)
		case string:
			return strconv.FormatInt(g, 10) == w
		}
	}
	return false
}
