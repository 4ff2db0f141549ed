package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamers.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write test csv: %v", err)
	}
	return path
}

const smallDataset = `author,subreddit,created_utc,permalink
alice,halo,1600000000,/r/halo/c1
alice,pokemon,1600000100,/r/pokemon/c1
alice,Steam,1600000200,/r/Steam/c1
bob,halo,1600000300,/r/halo/c2
bob,Steam,1600000400,/r/Steam/c2
bob,gaming,1600000500,/r/gaming/c1
carol,pokemon,1600000600,/r/pokemon/c2
`

func TestLoadParsesRecords(t *testing.T) {
	path := writeCSV(t, smallDataset)

	records, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("expected 7 records, got %d", len(records))
	}

	first := records[0]
	if first.Author != "alice" || first.Subreddit != "halo" {
		t.Errorf("first record = %+v", first)
	}
	if first.Permalink != "/r/halo/c1" {
		t.Errorf("Permalink = %q", first.Permalink)
	}
	want := time.Unix(1600000000, 0).UTC()
	if !first.Created.Equal(want) {
		t.Errorf("Created = %v, want %v", first.Created, want)
	}
}

func TestLoadTagsCategories(t *testing.T) {
	path := writeCSV(t, smallDataset)

	records, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bySub := make(map[string]Record)
	for _, rec := range records {
		bySub[rec.Subreddit] = rec
	}

	if got := bySub["halo"]; got.Group != GroupGames || got.Platform != PlatformXbox {
		t.Errorf("halo tagged %q/%q, want VGames/Xbox", got.Group, got.Platform)
	}
	if got := bySub["Steam"]; got.Group != GroupSystems || got.Platform != PlatformPC {
		t.Errorf("Steam tagged %q/%q, want Systems/PC", got.Group, got.Platform)
	}
	if got := bySub["gaming"]; got.Group != GroupGeneral {
		t.Errorf("gaming tagged %q, want General", got.Group)
	}
	if got := bySub["pokemon"]; got.Platform != PlatformNintendo {
		t.Errorf("pokemon tagged %q, want Nintendo", got.Platform)
	}
}

func TestLoadMinDegreeDropsWholeAuthors(t *testing.T) {
	path := writeCSV(t, smallDataset)

	records, err := Load(path, Options{MinDegree: 3})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// carol has a single interaction and must disappear entirely
	if len(records) != 6 {
		t.Fatalf("expected 6 records after filtering, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Author == "carol" {
			t.Errorf("carol should have been filtered: %+v", rec)
		}
	}
	if Authors(records) != 2 {
		t.Errorf("Authors = %d, want 2", Authors(records))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if IsBadFormat(err) {
		t.Errorf("missing file should not be a format error: %v", err)
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "author,created_utc\nalice,1600000000\n")

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("expected error for missing subreddit column")
	}
	if !IsBadFormat(err) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestLoadEmptyField(t *testing.T) {
	path := writeCSV(t, "author,subreddit\nalice,halo\n,pokemon\n")

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("expected error for empty author")
	}
	if !IsBadFormat(err) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}

	var derr *DatasetError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DatasetError, got %T", err)
	}
	if derr.Line != 3 {
		t.Errorf("Line = %d, want 3", derr.Line)
	}
}

func TestLoadBadTimestamp(t *testing.T) {
	path := writeCSV(t, "author,subreddit,created_utc\nalice,halo,yesterday\n")

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("expected error for bad timestamp")
	}
	if !IsBadFormat(err) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestLoadShortRow(t *testing.T) {
	path := writeCSV(t, "author,subreddit,created_utc\nalice,halo\n")

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("expected error for short row")
	}
	if !IsBadFormat(err) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
