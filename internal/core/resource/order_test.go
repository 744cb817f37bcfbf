package resource

import (
	"reflect"
	"testing"
)

// Scenario: sort servers by name, then reversed.
func TestSort_ByName(t *testing.T) {
	rs := records(t, `[{"id":"1","name":"b"},{"id":"2","name":"a"}]`)

	if got := ids(Sort(rs, SortSpec{Field: "name"})); !reflect.DeepEqual(got, []string{"2", "1"}) {
		t.Errorf("Sort(name) = %v, want [2 1]", got)
	}
	if got := ids(Sort(rs, SortSpec{Field: "name", Reverse: true})); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Sort(name, reverse) = %v, want [1 2]", got)
	}
	if got := ids(rs); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("input was modified: %v", got)
	}
}

func TestSort_UnknownFieldIsNoop(t *testing.T) {
	rs := records(t, `[{"id":"3"},{"id":"1"},{"id":"2"}]`)

	for _, spec := range []SortSpec{{Field: "nope"}, {Field: "nope", Reverse: true}, {Reverse: true}} {
		if got := ids(Sort(rs, spec)); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
			t.Errorf("Sort(%+v) = %v, want original order", spec, got)
		}
	}
}

func TestSort_CaseInsensitiveField(t *testing.T) {
	rs := records(t, `[{"id":"1","CPU":50},{"id":"2","CPU":7}]`)

	if got := ids(Sort(rs, SortSpec{Field: "cpu"})); !reflect.DeepEqual(got, []string{"2", "1"}) {
		t.Errorf("Sort(cpu) = %v, want [2 1]", got)
	}
}

func TestSort_Stable(t *testing.T) {
	rs := records(t, `[
		{"id":"1","os":"linux"},
		{"id":"2","os":"bsd"},
		{"id":"3","os":"linux"},
		{"id":"4","os":"bsd"}
	]`)

	if got := ids(Sort(rs, SortSpec{Field: "os"})); !reflect.DeepEqual(got, []string{"2", "4", "1", "3"}) {
		t.Errorf("Sort(os) = %v", got)
	}
	if got := ids(Sort(rs, SortSpec{Field: "os", Reverse: true})); !reflect.DeepEqual(got, []string{"1", "3", "2", "4"}) {
		t.Errorf("Sort(os, reverse) = %v", got)
	}
}

func TestSort_Numeric(t *testing.T) {
	rs := records(t, `[{"id":"a","load":10},{"id":"b","load":9.5},{"id":"c","load":100}]`)

	if got := ids(Sort(rs, SortSpec{Field: "load"})); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Sort(load) = %v, want numeric order", got)
	}
}

func TestSort_MixedKinds(t *testing.T) {
	rs := records(t, `[
		{"id":"list","v":["x"]},
		{"id":"str","v":"abc"},
		{"id":"num","v":1},
		{"id":"true","v":true},
		{"id":"false","v":false},
		{"id":"null","v":null},
		{"id":"missing"}
	]`)

	got := ids(Sort(rs, SortSpec{Field: "v"}))
	want := []string{"null", "missing", "false", "true", "num", "str", "list"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort(v) = %v, want %v", got, want)
	}
}

func TestLimit(t *testing.T) {
	rs := records(t, `[{"id":"1"},{"id":"2"},{"id":"3"}]`)

	tests := []struct {
		n    int
		want int
	}{
		{0, 3},
		{-1, 3},
		{1, 1},
		{2, 2},
		{3, 3},
		{10, 3},
	}
	for _, tt := range tests {
		got := Limit(rs, tt.n)
		if len(got) != tt.want {
			t.Errorf("Limit(%d) = %d records, want %d", tt.n, len(got), tt.want)
		}
		if tt.n > 0 && len(got) > tt.n {
			t.Errorf("Limit(%d) exceeded bound", tt.n)
		}
	}

	if got := ids(Limit(rs, 2)); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Limit(2) = %v, want the first two", got)
	}
}
