package world

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMergesSnapshots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "run1/entities.json", `{
		"current_tick": 10,
		"entities": [{"id": "ent-a", "name": "Alpha", "kind": "npc", "prominence": 2, "status": "active"}]
	}`)
	writeFile(t, dir, "run1/events.json", `{
		"current_tick": 25,
		"events": [{"id": "ev-1", "tick": 3, "significance": 0.5, "headline": "Alpha awakens",
			"subject": {"id": "ent-a", "name": "Alpha"}}]
	}`)

	snap, err := Load(dir, []string{"**/*.json"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.CurrentTick != 25 {
		t.Errorf("CurrentTick = %d, want max across files", snap.CurrentTick)
	}
	if len(snap.Entities) != 1 || len(snap.Events) != 1 {
		t.Errorf("merged %d entities, %d events", len(snap.Entities), len(snap.Events))
	}
}

func TestLoadNoMatches(t *testing.T) {
	if _, err := Load(t.TempDir(), []string{"**/*.json"}); err == nil {
		t.Error("expected an error when no snapshot files match")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{"entities": [`)
	if _, err := Load(dir, nil); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadRejectsInvalidData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{
		"entities": [{"id": "ent-x", "name": "X", "kind": "npc", "prominence": 9, "status": "active"}]
	}`)
	if _, err := Load(dir, nil); err == nil {
		t.Error("expected a validation error for prominence outside [0,5]")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{"empty", Snapshot{}, false},
		{"missing id", Snapshot{Entities: []Entity{{Name: "X"}}}, true},
		{"prominence too high", Snapshot{Entities: []Entity{{ID: "e", Prominence: 6}}}, true},
		{"significance negative", Snapshot{Events: []NarrativeEvent{{ID: "ev", Significance: -0.1}}}, true},
		{"valid", Snapshot{
			Entities: []Entity{{ID: "e", Name: "E", Prominence: 5}},
			Events:   []NarrativeEvent{{ID: "ev", Significance: 1}},
		}, false},
	}
	for _, tc := range cases {
		err := tc.snap.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestCurrentEra(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{Entities: []Entity{
		{ID: "era-1", Name: "First Age", Kind: EntityKindEra, CreatedAt: t0},
		{ID: "era-2", Name: "Second Age", Kind: EntityKindEra, CreatedAt: t0.Add(time.Hour)},
		{ID: "ent-a", Name: "Alpha", Kind: "npc", CreatedAt: t0.Add(2 * time.Hour)},
	}}

	era, ok := snap.CurrentEra()
	if !ok || era.ID != "era-2" {
		t.Errorf("CurrentEra = %v, %v; want era-2", era.ID, ok)
	}

	if _, ok := (&Snapshot{}).CurrentEra(); ok {
		t.Error("snapshot without eras should report none")
	}
}

func TestCultures(t *testing.T) {
	snap := Snapshot{Entities: []Entity{
		{ID: "a", Culture: "Veldari"},
		{ID: "b", Culture: "Norvani"},
		{ID: "c", Culture: "Veldari"},
		{ID: "d"},
	}}
	got := snap.Cultures()
	if len(got) != 2 || got[0] != "Norvani" || got[1] != "Veldari" {
		t.Errorf("Cultures = %v", got)
	}
}
