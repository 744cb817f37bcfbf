package resource

import (
	"reflect"
	"testing"
)

const siteFixture = `[
	{"id":"1","url":"https://a.com","name":"alpha","location":"eu","issues":0,"tags":["prod"]},
	{"id":"2","url":"https://b.com","name":"beta","location":"us","issues":1,"tags":["dev"]},
	{"id":"3","url":"https://shop.a.com","name":"gamma","location":"eu","issues":"2","tags":["prod","shop"]},
	{"id":"4","url":"https://c.org","name":"alpha","location":"us","issues":null}
]`

func TestCriteria_Precedence(t *testing.T) {
	rs := records(t, siteFixture)

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"empty selects all", Criteria{}, []string{"1", "2", "3", "4"}},
		{"id wins over everything", Criteria{ID: "2", Name: "alpha", Tags: []string{"prod"}, IssuesOnly: false}, []string{"2"}},
		{"id ignores issues filter", Criteria{ID: "1", IssuesOnly: true}, []string{"1"}},
		{"name beats url", Criteria{Name: "alpha", URL: "https://b.com"}, []string{"1", "4"}},
		{"url alone", Criteria{URL: "https://b.com"}, []string{"2"}},
		{"url and location are and-ed", Criteria{URL: "https://a.com", Location: "us"}, nil},
		{"location alone", Criteria{Location: "eu"}, []string{"1", "3"}},
		{"location beats pattern", Criteria{Location: "us", Pattern: "shop"}, []string{"2", "4"}},
		{"pattern matches url", Criteria{Pattern: "a.com"}, []string{"1", "3"}},
		{"pattern matches name", Criteria{Pattern: "et"}, []string{"2"}},
		{"tags intersect", Criteria{Tags: []string{"shop", "dev"}}, []string{"2", "3"}},
		{"tags and-ed with name", Criteria{Name: "alpha", Tags: []string{"prod"}}, []string{"1"}},
		{"issues only", Criteria{IssuesOnly: true}, []string{"2", "3"}},
		{"issues and-ed with location", Criteria{Location: "eu", IssuesOnly: true}, []string{"3"}},
		{"case sensitive", Criteria{Name: "Alpha"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testSites, rs, tt.c)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Filter() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestCriteria_UniqueKey(t *testing.T) {
	rs := records(t, `[{"token":"abc"},{"token":"def"}]`)

	got := Filter(testTokens, rs, Criteria{ID: "def"})
	if len(got) != 1 || got[0].Text("token") != "def" {
		t.Errorf("Filter(token=def) = %v", got)
	}
}

// Scenario: two sites, one with issues.
func TestCriteria_IssuesOnlyScenario(t *testing.T) {
	rs := records(t, `[{"id":"1","url":"a.com","issues":0},{"id":"2","url":"b.com","issues":1}]`)

	got := Filter(testSites, rs, Criteria{IssuesOnly: true})
	if !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Errorf("Filter(issuesOnly) = %v, want [2]", ids(got))
	}
}

// Every record in the result matches, every record left out does not.
func TestFilter_Soundness(t *testing.T) {
	rs := records(t, siteFixture)
	criteria := []Criteria{
		{Name: "alpha"},
		{Pattern: "com", Tags: []string{"prod"}},
		{Location: "us", IssuesOnly: true},
		{ID: "3"},
		{Tags: []string{"missing"}},
	}

	for _, c := range criteria {
		got := Filter(testSites, rs, c)
		in := make(map[string]bool)
		for _, r := range got {
			in[r.Text("id")] = true
			if !c.Match(testSites, r) {
				t.Errorf("%+v: %s selected but does not match", c, r.Text("id"))
			}
		}
		for _, r := range rs {
			if !in[r.Text("id")] && c.Match(testSites, r) {
				t.Errorf("%+v: %s matches but was not selected", c, r.Text("id"))
			}
		}
	}
}

func TestHasIssues(t *testing.T) {
	tests := []struct {
		json string
		want bool
	}{
		{`{}`, false},
		{`{"issues":null}`, false},
		{`{"issues":0}`, false},
		{`{"issues":0.0}`, false},
		{`{"issues":3}`, true},
		{`{"issues":""}`, false},
		{`{"issues":"0"}`, false},
		{`{"issues":"1"}`, true},
		{`{"issues":false}`, false},
		{`{"issues":true}`, true},
		{`{"issues":[]}`, false},
		{`{"issues":["disk full"]}`, true},
	}

	for _, tt := range tests {
		r := records(t, "["+tt.json+"]")[0]
		if got := hasIssues(r); got != tt.want {
			t.Errorf("hasIssues(%s) = %v, want %v", tt.json, got, tt.want)
		}
	}
}

func TestCriteria_Empty(t *testing.T) {
	if !(Criteria{}).Empty() {
		t.Error("zero Criteria should be empty")
	}
	for _, c := range []Criteria{{ID: "1"}, {Tags: []string{"x"}}, {IssuesOnly: true}, {Pattern: "p"}} {
		if c.Empty() {
			t.Errorf("%+v should not be empty", c)
		}
	}
}
