package standing

import "testing"

func TestSeasonFromStartDate(t *testing.T) {
	tests := map[string]string{
		"2024-08-16": "2024",
		"2025":       "2025",
		"24":         "24",
		"":           "",
	}
	for in, want := range tests {
		if got := SeasonFromStartDate(in); got != want {
			t.Fatalf("SeasonFromStartDate(%q)=%q want=%q", in, got, want)
		}
	}
}

func TestTable_Teams(t *testing.T) {
	table := Table{Rows: []Row{
		{TeamID: 64, Name: "Liverpool FC", Position: 1},
		{TeamID: 57, Name: "Arsenal FC", Position: 2},
	}}

	teams := table.Teams()
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].ID != 64 || teams[1].Name != "Arsenal FC" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}
