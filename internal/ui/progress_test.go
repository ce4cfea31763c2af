package ui

import (
	"testing"

	"oneassert/internal/driver"
)

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		stage  driver.Stage
		status driver.Status
		want   string
	}{
		{driver.StageQueued, driver.StatusQueued, "queued"},
		{driver.StageExpand, driver.StatusWorking, "expanding"},
		{driver.StageWrite, driver.StatusWorking, "writing"},
		{driver.StageExpand, driver.StatusDone, "done"},
		{driver.StageWrite, driver.StatusError, "error"},
	}
	for _, tc := range cases {
		if got := statusLabel(tc.stage, tc.status); got != tc.want {
			t.Errorf("statusLabel(%v, %v) = %q, want %q", tc.stage, tc.status, got, tc.want)
		}
	}
}

func TestProgressFromStage(t *testing.T) {
	if progressFromStage(driver.StageQueued) != 0 {
		t.Error("queued stage should contribute nothing")
	}
	if progressFromStage(driver.StageExpand) >= progressFromStage(driver.StageWrite) {
		t.Error("write stage should sit further along than expand")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a/very/long/path/to/an/input.oa", 14); got != "a/very/long..." {
		t.Errorf("truncate long = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("truncate tiny = %q", got)
	}
	if got := truncate("anything", 0); got != "anything" {
		t.Errorf("truncate unbounded = %q", got)
	}
}
