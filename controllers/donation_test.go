package controllers

import (
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/gin-gonic/gin"
)

func TestUpdateDonationClearsGoalReference(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `donations` WHERE donation_id = \\?"),
			columns: []string{"donation_id", "donor_name", "amount", "goal_id", "payment_method", "payment_status"},
			rows: [][]driver.Value{
				{int64(3), "Ivan Petrov", "100.00", int64(5), "card", "completed"},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `donations` SET .* WHERE `donation_id` = \\?"),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	oldDB := config.DB
	config.DB = gormDB
	defer func() { config.DB = oldDB }()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/admin/donations/3",
		strings.NewReader(`{"clear_goal":true}`))
	c.Request.Header.Set("Content-Type", "application/json")

	UpdateDonation(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data models.Donation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.GoalID != nil {
		t.Fatalf("expected goal_id cleared to null, got %d", *resp.Data.GoalID)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
