package storage

import (
	"testing"
	"time"

	"focusloop/internal/core/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenHistory(":memory:")
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { history.Close() })
	return history
}

func TestRecordCompletionAndRecent(t *testing.T) {
	history := openTestHistory(t)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

	records := []SessionRecord{
		{Mode: model.ModeFocus, Duration: 25 * time.Minute, RewardEarned: true, CompletedAt: base},
		{Mode: model.ModeShortBreak, Duration: 5 * time.Minute, CompletedAt: base.Add(30 * time.Minute)},
		{Mode: model.ModeFocus, Duration: 25 * time.Minute, RewardEarned: true, CompletedAt: base.Add(time.Hour)},
	}
	for _, record := range records {
		if err := history.RecordCompletion(record); err != nil {
			t.Fatalf("RecordCompletion: %v", err)
		}
	}

	recent, err := history.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d records, want 2", len(recent))
	}
	if recent[0].Mode != model.ModeFocus || recent[0].Duration != 25*time.Minute {
		t.Fatalf("newest record = %+v", recent[0])
	}
	if !recent[0].CompletedAt.After(recent[1].CompletedAt) {
		t.Fatal("records not ordered newest first")
	}
	if !recent[0].RewardEarned {
		t.Fatal("reward flag lost in round trip")
	}
}

func TestCompletedFocusOnCountsOnlyThatDay(t *testing.T) {
	history := openTestHistory(t)
	day := time.Date(2024, 3, 1, 14, 0, 0, 0, time.Local)

	completions := []SessionRecord{
		{Mode: model.ModeFocus, Duration: 25 * time.Minute, CompletedAt: day},
		{Mode: model.ModeFocus, Duration: 25 * time.Minute, CompletedAt: day.Add(2 * time.Hour)},
		{Mode: model.ModeShortBreak, Duration: 5 * time.Minute, CompletedAt: day},
		{Mode: model.ModeFocus, Duration: 25 * time.Minute, CompletedAt: day.AddDate(0, 0, -1)},
		{Mode: model.ModeFocus, Duration: 25 * time.Minute, CompletedAt: day.AddDate(0, 0, 1)},
	}
	for _, record := range completions {
		if err := history.RecordCompletion(record); err != nil {
			t.Fatalf("RecordCompletion: %v", err)
		}
	}

	count, err := history.CompletedFocusOn(day)
	if err != nil {
		t.Fatalf("CompletedFocusOn: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}
