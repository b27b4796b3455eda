package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExpenseReportJSONOmitsUnloadedRelations(t *testing.T) {
	b, err := json.Marshal(ExpenseReport{ReportID: 1, GoalID: 5})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(b), `"goal":`) {
		t.Fatalf("expected no goal object without preload, got %s", b)
	}
	if strings.Contains(string(b), `"photos":`) {
		t.Fatalf("expected no photos array without preload, got %s", b)
	}
}
