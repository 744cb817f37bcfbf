package resource

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
)

// SortSpec orders records by one field. An empty Field keeps fetch order
// and ignores Reverse.
type SortSpec struct {
	Field   string
	Reverse bool
}

// Sort returns records ordered by spec. The input is not modified.
// A field no record carries leaves the order unchanged.
func Sort(records []Record, spec SortSpec) []Record {
	if spec.Field == "" || !anyHas(records, spec.Field) {
		return records
	}

	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		av, aok := a.Lookup(spec.Field)
		bv, bok := b.Lookup(spec.Field)
		c := compareValues(av, aok, bv, bok)
		if spec.Reverse {
			return -c
		}
		return c
	})
	return out
}

// Limit keeps the first n records; n <= 0 keeps all.
func Limit(records []Record, n int) []Record {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[:n]
}

func anyHas(records []Record, field string) bool {
	for _, r := range records {
		if _, ok := r.Lookup(field); ok {
			return true
		}
	}
	return false
}

// Kind ranks used when values of different types are compared.
const (
	rankMissing = iota
	rankBool
	rankNumber
	rankString
	rankList
)

func rank(v any, ok bool) int {
	if !ok {
		return rankMissing
	}
	switch v.(type) {
	case nil:
		return rankMissing
	case bool:
		return rankBool
	case json.Number, float64:
		return rankNumber
	case string:
		return rankString
	default:
		return rankList
	}
}

func compareValues(a any, aok bool, b any, bok bool) int {
	ra, rb := rank(a, aok), rank(b, bok)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankBool:
		return cmp.Compare(boolInt(a.(bool)), boolInt(b.(bool)))
	case rankNumber:
		return cmp.Compare(number(a), number(b))
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankList:
		return strings.Compare(Text(a), Text(b))
	default:
		return 0
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func number(v any) float64 {
	switch x := v.(type) {
	case json.Number:
		f, _ := x.Float64()
		return f
	case float64:
		return x
	}
	return 0
}
