package controllers

import (
	"net/http"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats - record counts for the admin landing page (Admin only)
func GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalNews           int64  `json:"total_news"`
		PublishedNews       int64  `json:"published_news"`
		TotalGoals          int64  `json:"total_goals"`
		ActiveGoals         int64  `json:"active_goals"`
		CompletedGoals      int64  `json:"completed_goals"`
		SuspendedGoals      int64  `json:"suspended_goals"`
		TotalDonations      int64  `json:"total_donations"`
		PendingDonations    int64  `json:"pending_donations"`
		CompletedAmount     string `json:"completed_amount"`
		TotalExpenseReports int64  `json:"total_expense_reports"`
		TotalExpensePhotos  int64  `json:"total_expense_photos"`
	}

	config.DB.Model(&models.News{}).Count(&stats.TotalNews)
	config.DB.Model(&models.News{}).Where("is_published = ?", true).Count(&stats.PublishedNews)

	config.DB.Model(&models.FundraisingGoal{}).Count(&stats.TotalGoals)
	config.DB.Model(&models.FundraisingGoal{}).Where("status = ?", models.GoalStatusActive).Count(&stats.ActiveGoals)
	config.DB.Model(&models.FundraisingGoal{}).Where("status = ?", models.GoalStatusCompleted).Count(&stats.CompletedGoals)
	config.DB.Model(&models.FundraisingGoal{}).Where("status = ?", models.GoalStatusSuspended).Count(&stats.SuspendedGoals)

	config.DB.Model(&models.Donation{}).Count(&stats.TotalDonations)
	config.DB.Model(&models.Donation{}).Where("payment_status = ?", models.PaymentStatusPending).Count(&stats.PendingDonations)
	config.DB.Model(&models.Donation{}).
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.CompletedAmount)

	config.DB.Model(&models.ExpenseReport{}).Count(&stats.TotalExpenseReports)
	config.DB.Model(&models.ExpensePhoto{}).Count(&stats.TotalExpensePhotos)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
