package benchstore

import (
	"path/filepath"
	"testing"
	"time"

	"cattalk-v0/internal/bench"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "bench.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndReload(t *testing.T) {
	db := openTestDB(t)

	runID, err := db.BeginRun("smoke", []string{"qwen2.5:3b"})
	if err != nil {
		t.Fatalf("begin run: %v", err)
	}

	c := bench.Case{
		Key: "k1", UserText: "밥?", Hour: 8, AgeDays: 200, LastType: "talk",
		Hunger: 85, Energy: 60, Fun: 50, Affect: 50, Trust: 60,
	}
	row := bench.ScoreResponse(c, "배고파, 밥 줘")
	row.Model = "qwen2.5:3b"
	row.CreatedAt = time.Now()

	w := db.Writer(runID)
	if err := w.SaveRow(row); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := db.RowsForRun(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].CaseKey != "k1" || got[0].Model != "qwen2.5:3b" {
		t.Fatalf("identity lost: %+v", got[0])
	}
	if got[0].Cat.Total != row.Cat.Total || got[0].Combined != row.Combined {
		t.Fatalf("scores lost: %+v", got[0])
	}
	if got[0].Control.NeedTop1 != "food" {
		t.Fatalf("control not round-tripped: %+v", got[0].Control)
	}
}

func TestLatestRunID(t *testing.T) {
	db := openTestDB(t)

	id, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("latest on empty: %v", err)
	}
	if id != 0 {
		t.Fatalf("empty store should report 0, got %d", id)
	}

	first, _ := db.BeginRun("a", []string{"m"})
	second, _ := db.BeginRun("b", []string{"m"})
	if second <= first {
		t.Fatalf("run ids should increase: %d then %d", first, second)
	}

	id, err = db.LatestRunID()
	if err != nil {
		t.Fatal(err)
	}
	if id != second {
		t.Fatalf("latest should be %d, got %d", second, id)
	}
}

func TestRowsForRunSkipsMalformed(t *testing.T) {
	db := openTestDB(t)
	runID, _ := db.BeginRun("smoke", []string{"m"})

	if _, err := db.Exec(`INSERT INTO rows(
			run_id, created_at, model, case_key, user_text, response,
			control_json, plan_json, cat_total, cat_raw, tag_score,
			tag_compliance, tag_violation_rate, combined, detail_json, error
		) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		runID, "2025-01-01T00:00:00Z", "m", "bad", "", "",
		"{}", "{}", 0, 0, 0, 0.0, 0.0, 0.0, "not json", ""); err != nil {
		t.Fatalf("insert malformed: %v", err)
	}

	w := db.Writer(runID)
	good := bench.ScoreResponse(bench.Case{Key: "good", Hour: 8}, "냥")
	good.Model = "m"
	if err := w.SaveRow(good); err != nil {
		t.Fatal(err)
	}

	rows, err := db.RowsForRun(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 || rows[0].CaseKey != "good" {
		t.Fatalf("malformed row should be skipped, got %+v", rows)
	}
}
