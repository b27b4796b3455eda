// controllers/fundraising_goal.go
package controllers

import (
	"net/http"

	"charity-foundation-api/config"
	"charity-foundation-api/models"
	"charity-foundation-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetFundraisingGoals - admin list, priority ascending then newest first.
// Filters: status, priority. Free-text search over title and description
// via q.
func GetFundraisingGoals(c *gin.Context) {
	query := config.DB.Model(&models.FundraisingGoal{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var goals []models.FundraisingGoal
	if err := query.Order("priority ASC, created_at DESC").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fundraising goals"})
		return
	}

	responses := make([]models.FundraisingGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, goals[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetFundraisingGoal - single goal with derived values
func GetFundraisingGoal(c *gin.Context) {
	id := c.Param("id")

	var goal models.FundraisingGoal
	if err := config.DB.Where("goal_id = ?", id).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fundraising goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    goal.ToResponse(),
	})
}

// CreateFundraisingGoal - new goal (Admin only), optional "image" part
func CreateFundraisingGoal(c *gin.Context) {
	var req models.FundraisingGoalCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TargetAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_amount must not be negative"})
		return
	}

	goal := models.FundraisingGoal{
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Status:        utils.DefaultString(req.Status, models.GoalStatusActive),
		Deadline:      req.Deadline,
		Priority:      1,
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "current_amount must not be negative"})
			return
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}

	if _, header, ferr := c.Request.FormFile("image"); ferr == nil {
		path, serr := saveUpload(c, header, bucketGoals, imageTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		goal.ImagePath = &path
	}

	if err := config.DB.Create(&goal).Error; err != nil {
		if goal.ImagePath != nil {
			removeStoredFile(*goal.ImagePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fundraising goal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Fundraising goal created successfully",
		"data":    goal.ToResponse(),
	})
}

// UpdateFundraisingGoal - edit goal (Admin only). Status changes happen
// only here; nothing completes a goal automatically.
func UpdateFundraisingGoal(c *gin.Context) {
	id := c.Param("id")

	var goal models.FundraisingGoal
	if err := config.DB.Where("goal_id = ?", id).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fundraising goal not found"})
		return
	}

	var req models.FundraisingGoalUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TargetAmount != nil && req.TargetAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_amount must not be negative"})
		return
	}
	if req.CurrentAmount != nil && req.CurrentAmount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_amount must not be negative"})
		return
	}

	var oldImage, newImage string
	if _, header, ferr := c.Request.FormFile("image"); ferr == nil {
		path, serr := saveUpload(c, header, bucketGoals, imageTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		if goal.ImagePath != nil {
			oldImage = *goal.ImagePath
		}
		newImage = path
		goal.ImagePath = &path
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.ClearDeadline != nil && *req.ClearDeadline {
		goal.Deadline = nil
	} else if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		removeStoredFile(newImage)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fundraising goal"})
		return
	}

	if newImage != "" {
		removeStoredFile(oldImage)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fundraising goal updated successfully",
		"data":    goal.ToResponse(),
	})
}

// DeleteFundraisingGoal - remove goal (Admin only). Donations keep their
// rows with the goal reference cleared; expense reports cascade, their
// photo links go with them, the photos themselves stay.
func DeleteFundraisingGoal(c *gin.Context) {
	id := c.Param("id")

	var goal models.FundraisingGoal
	if err := config.DB.Where("goal_id = ?", id).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fundraising goal not found"})
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Donation{}).
			Where("goal_id = ?", goal.GoalID).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM expense_report_photos WHERE report_id IN (SELECT report_id FROM expense_reports WHERE goal_id = ?)",
			goal.GoalID,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goal.GoalID).
			Delete(&models.ExpenseReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&goal).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fundraising goal"})
		return
	}

	if goal.ImagePath != nil {
		removeStoredFile(*goal.ImagePath)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fundraising goal deleted successfully",
	})
}

// GetActiveFundraisingGoals - public list of goals open for donations
func GetActiveFundraisingGoals(c *gin.Context) {
	var goals []models.FundraisingGoal
	if err := config.DB.Where("status = ?", models.GoalStatusActive).
		Order("priority ASC, created_at DESC").
		Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fundraising goals"})
		return
	}

	responses := make([]models.FundraisingGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, goals[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}
