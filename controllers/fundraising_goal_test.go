package controllers

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"charity-foundation-api/config"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDeleteFundraisingGoalDetachesDonationsAndCascadesReports(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `fundraising_goals` WHERE goal_id = \\?"),
			columns: []string{"goal_id", "title", "description", "target_amount", "current_amount", "status", "priority"},
			rows: [][]driver.Value{
				{int64(5), "Clean water well", "Borehole for the village", "1000.00", "250.00", "active", int64(1)},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `donations` SET `goal_id`=.* WHERE goal_id = \\?"),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`DELETE FROM expense_report_photos WHERE report_id IN \(SELECT report_id FROM expense_reports WHERE goal_id = \?\)`),
			args:    []driver.Value{int64(5)},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `expense_reports` WHERE goal_id = \\?"),
			args:    []driver.Value{int64(5)},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `fundraising_goals` WHERE .*`goal_id` = \\?"),
			args:    []driver.Value{int64(5)},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	oldDB := config.DB
	config.DB = gormDB
	defer func() { config.DB = oldDB }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/goals/5", nil)

	DeleteFundraisingGoal(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
	if commits, rollbacks := state.txCounts(); commits != 1 || rollbacks != 0 {
		t.Fatalf("expected one committed transaction, got %d commits %d rollbacks", commits, rollbacks)
	}
}

func TestDeleteFundraisingGoalRollsBackWhenCascadeFails(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `fundraising_goals` WHERE goal_id = \\?"),
			columns: []string{"goal_id", "title", "description", "target_amount", "current_amount", "status", "priority"},
			rows: [][]driver.Value{
				{int64(5), "Clean water well", "Borehole for the village", "1000.00", "250.00", "active", int64(1)},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `donations` SET `goal_id`=.* WHERE goal_id = \\?"),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`DELETE FROM expense_report_photos WHERE report_id IN`),
			err:     errors.New("lock wait timeout exceeded"),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	oldDB := config.DB
	config.DB = gormDB
	defer func() { config.DB = oldDB }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/goals/5", nil)

	DeleteFundraisingGoal(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	// The donation detach must not survive the failed cascade
	if commits, rollbacks := state.txCounts(); commits != 0 || rollbacks != 1 {
		t.Fatalf("expected one rolled-back transaction, got %d commits %d rollbacks", commits, rollbacks)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestGetFundraisingGoalsComputesDerivedValues(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `fundraising_goals` WHERE status = \\? ORDER BY priority ASC, created_at DESC"),
			columns: []string{"goal_id", "title", "description", "target_amount", "current_amount", "status", "priority"},
			rows: [][]driver.Value{
				{int64(1), "Clean water well", "Borehole for the village", "1000.00", "250.00", "active", int64(1)},
				{int64(2), "School supplies", "Notebooks and backpacks", "0.00", "120.00", "active", int64(2)},
			},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	oldDB := config.DB
	config.DB = gormDB
	defer func() { config.DB = oldDB }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/goals?status=active", nil)

	GetFundraisingGoals(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			GoalID             int         `json:"goal_id"`
			ProgressPercentage json.Number `json:"progress_percentage"`
			DaysLeft           *int        `json:"days_left"`
		} `json:"data"`
	}
	dec := json.NewDecoder(w.Body)
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success || resp.Count != 2 {
		t.Fatalf("unexpected response envelope: success=%v count=%d", resp.Success, resp.Count)
	}
	if progress, err := resp.Data[0].ProgressPercentage.Float64(); err != nil || progress != 25 {
		t.Fatalf("expected 25 percent progress, got %s", resp.Data[0].ProgressPercentage)
	}
	// Zero target must not blow up and reads as zero progress
	if progress, err := resp.Data[1].ProgressPercentage.Float64(); err != nil || progress != 0 {
		t.Fatalf("expected 0 percent progress for zero target, got %s", resp.Data[1].ProgressPercentage)
	}
	if resp.Data[0].DaysLeft != nil {
		t.Fatalf("expected null days_left without deadline, got %d", *resp.Data[0].DaysLeft)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestDeleteExpenseReportKeepsPhotos(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `expense_reports` WHERE report_id = \\?"),
			columns: []string{"report_id", "title", "description", "report_type", "amount_spent", "goal_id"},
			rows: [][]driver.Value{
				{int64(7), "Pump purchase", "Water pump and piping", "purchase", "480.00", int64(5)},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`DELETE FROM expense_report_photos WHERE report_id = \?`),
			args:    []driver.Value{int64(7)},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `expense_reports` WHERE .*`report_id` = \\?"),
			args:    []driver.Value{int64(7)},
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	oldDB := config.DB
	config.DB = gormDB
	defer func() { config.DB = oldDB }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/expense-reports/7", nil)

	DeleteExpenseReport(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	// verifyComplete doubles as the proof that no expense_photos row was
	// touched: any extra statement would have failed the script.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
	if commits, rollbacks := state.txCounts(); commits != 1 || rollbacks != 0 {
		t.Fatalf("expected one committed transaction, got %d commits %d rollbacks", commits, rollbacks)
	}
}
