package query

import (
	"fmt"
	"sort"
	"strings"

	"screenfeed/models"
)

// descSuffix marks a sort key as descending, e.g. "airTimestamp:desc".
const descSuffix = ":desc"

type sortKey struct {
	field string
	desc  bool
}

func parseSortKeys(keys []string) []sortKey {
	parsed := make([]sortKey, 0, len(keys))
	for _, k := range keys {
		if field, ok := strings.CutSuffix(k, descSuffix); ok {
			parsed = append(parsed, sortKey{field: field, desc: true})
			continue
		}
		parsed = append(parsed, sortKey{field: k})
	}
	return parsed
}

// Sort orders records by the given keys, comparing by the first key and
// falling through to the next on equality. The sort is stable: ties after
// the last key keep their input order, which pagination relies on for
// deterministic pages across identical requests. An empty key list returns
// the input unchanged.
func Sort(records []models.Record, keys []string) []models.Record {
	if len(keys) == 0 {
		return records
	}

	parsed := parseSortKeys(keys)
	out := make([]models.Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range parsed {
			c := compareField(out[i], out[j], k.field)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

// compareField compares two records on one field. A missing field is a
// sentinel below every present value; the direction flip in Sort applies
// to it the same way it applies to real values.
func compareField(a, b models.Record, field string) int {
	av, aok := a.Field(field)
	bv, bok := b.Field(field)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return compareValues(av, bv)
}

func compareValues(a, b any) int {
	if an, aok := asFloat(a); aok {
		if bn, bok := asFloat(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}
	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case !ab && bb:
				return -1
			case ab && !bb:
				return 1
			}
			return 0
		}
	}
	// Mixed types on the same field only happen for unknown keys; compare
	// their printed forms so the order is at least deterministic.
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
