package resource

import (
	"encoding/json"
	"slices"
	"strings"
)

// Criteria selects records. Zero value selects everything.
//
// Precedence: ID wins outright. Otherwise the first of Name,
// URL/Location, Pattern that is set decides, and Tags and IssuesOnly
// narrow that result further.
type Criteria struct {
	// ID matches the schema's unique key exactly.
	ID       string
	Name     string
	URL      string
	Location string
	// Pattern is a substring of url or name.
	Pattern    string
	Tags       []string
	IssuesOnly bool
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return c.ID == "" && c.Name == "" && c.URL == "" && c.Location == "" &&
		c.Pattern == "" && len(c.Tags) == 0 && !c.IssuesOnly
}

// Match reports whether r satisfies the criteria.
func (c Criteria) Match(s Schema, r Record) bool {
	if c.ID != "" {
		key := s.UniqueKey
		if key == "" {
			key = "id"
		}
		return r.Text(key) == c.ID
	}

	switch {
	case c.Name != "":
		if r.Text("name") != c.Name {
			return false
		}
	case c.URL != "" || c.Location != "":
		if c.URL != "" && r.Text("url") != c.URL {
			return false
		}
		if c.Location != "" && r.Text("location") != c.Location {
			return false
		}
	case c.Pattern != "":
		if !strings.Contains(r.Text("url"), c.Pattern) && !strings.Contains(r.Text("name"), c.Pattern) {
			return false
		}
	}

	if len(c.Tags) > 0 && !intersects(r.Strings("tags"), c.Tags) {
		return false
	}

	if c.IssuesOnly && !hasIssues(r) {
		return false
	}

	return true
}

// Filter returns the records matching c, in their original order.
func Filter(s Schema, records []Record, c Criteria) []Record {
	if c.Empty() {
		return records
	}

	var out []Record
	for _, r := range records {
		if c.Match(s, r) {
			out = append(out, r)
		}
	}
	return out
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

// hasIssues treats a missing, zero, false or empty issues field as no issues.
func hasIssues(r Record) bool {
	v, ok := r.Get("issues")
	if !ok {
		return false
	}

	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String() != ""
		}
		return f != 0
	case float64:
		return x != 0
	case string:
		return x != "" && x != "0"
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
