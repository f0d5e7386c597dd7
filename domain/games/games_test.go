package games

import "testing"

func TestNormalizeSortsByDateThenID(t *testing.T) {
	table := Table{
		{GameID: 3, Date: "2024-04-02"},
		{GameID: 2, Date: "2024-04-01"},
		{GameID: 1, Date: "2024-04-01"},
	}

	got := table.Normalize()
	if got[0].GameID != 1 || got[1].GameID != 2 || got[2].GameID != 3 {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestNormalizeDropsDuplicateGameIDs(t *testing.T) {
	table := Table{
		{GameID: 1, Date: "2024-04-01", Home: "first"},
		{GameID: 1, Date: "2024-04-01", Home: "second"},
		{GameID: 2, Date: "2024-04-01"},
	}

	got := table.Normalize()
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Home != "first" {
		t.Fatalf("expected first occurrence kept, got %+v", got[0])
	}
}

func TestNormalizeKeepsEmptyTableTyped(t *testing.T) {
	var table Table
	got := table.Normalize()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil table, got %#v", got)
	}
}

func TestGameIDsPreservesOrder(t *testing.T) {
	table := Table{{GameID: 5}, {GameID: 3}}
	ids := table.GameIDs()
	if len(ids) != 2 || ids[0] != 5 || ids[1] != 3 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestGameStateValues(t *testing.T) {
	expected := map[GameState]string{
		StateScheduled: "S",
		StatePregame:   "P",
		StateLive:      "I",
		StateFinal:     "F",
		StatePostponed: "D",
		StateGameOver:  "O",
	}

	for state, want := range expected {
		if string(state) != want {
			t.Fatalf("expected %q got %q", want, state)
		}
	}
}
