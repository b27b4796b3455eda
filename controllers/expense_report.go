// controllers/expense_report.go
package controllers

import (
	"net/http"
	"time"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetExpenseReports - admin list, newest report_date first.
// Filters: report_type, report_after, report_before (YYYY-MM-DD).
// Free-text search over title and description via q.
func GetExpenseReports(c *gin.Context) {
	query := config.DB.Model(&models.ExpenseReport{}).
		Preload("Goal").
		Preload("Photos")

	if reportType := c.Query("report_type"); reportType != "" {
		query = query.Where("report_type = ?", reportType)
	}
	if after := c.Query("report_after"); after != "" {
		query = query.Where("report_date >= ?", after)
	}
	if before := c.Query("report_before"); before != "" {
		query = query.Where("report_date <= ?", before)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var reports []models.ExpenseReport
	if err := query.Order("report_date DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reports,
		"count":   len(reports),
	})
}

// GetPublishedExpenseReports - public list, published records only
func GetPublishedExpenseReports(c *gin.Context) {
	var reports []models.ExpenseReport
	if err := config.DB.Preload("Goal").Preload("Photos").
		Where("is_published = ?", true).
		Order("report_date DESC").
		Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reports,
		"count":   len(reports),
	})
}

// GetExpenseReport - single report with goal and photos
func GetExpenseReport(c *gin.Context) {
	id := c.Param("id")

	var report models.ExpenseReport
	if err := config.DB.Preload("Goal").Preload("Photos").
		Where("report_id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense report not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// ReadExpenseReport - public detail, published records only
func ReadExpenseReport(c *gin.Context) {
	id := c.Param("id")

	var report models.ExpenseReport
	if err := config.DB.Preload("Goal").Preload("Photos").
		Where("report_id = ? AND is_published = ?", id, true).
		First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense report not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// CreateExpenseReport - new report (Admin only), optional "document" part
// and optional photo_ids to attach existing photos.
func CreateExpenseReport(c *gin.Context) {
	var req models.ExpenseReportCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AmountSpent.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_spent must not be negative"})
		return
	}

	// The goal reference is mandatory
	var goal models.FundraisingGoal
	if err := config.DB.Where("goal_id = ?", req.GoalID).First(&goal).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fundraising goal not found"})
		return
	}

	report := models.ExpenseReport{
		Title:       req.Title,
		Description: req.Description,
		ReportType:  req.ReportType,
		AmountSpent: req.AmountSpent,
		GoalID:      req.GoalID,
		ReportDate:  time.Now(),
		IsPublished: true,
	}
	if req.ReportDate != nil {
		report.ReportDate = *req.ReportDate
	}
	if req.IsPublished != nil {
		report.IsPublished = *req.IsPublished
	}

	if _, header, ferr := c.Request.FormFile("document"); ferr == nil {
		path, serr := saveUpload(c, header, bucketExpenseDocs, documentTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		name := header.Filename
		report.DocumentName = &name
		report.DocumentPath = &path
	}

	if len(req.PhotoIDs) > 0 {
		var photos []models.ExpensePhoto
		if err := config.DB.Where("photo_id IN ?", req.PhotoIDs).Find(&photos).Error; err != nil || len(photos) != len(req.PhotoIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more photos not found"})
			return
		}
		report.Photos = photos
	}

	if err := config.DB.Create(&report).Error; err != nil {
		if report.DocumentPath != nil {
			removeStoredFile(*report.DocumentPath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense report"})
		return
	}

	config.DB.Preload("Goal").Preload("Photos").First(&report, report.ReportID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Expense report created successfully",
		"data":    report,
	})
}

// UpdateExpenseReport - edit report (Admin only)
func UpdateExpenseReport(c *gin.Context) {
	id := c.Param("id")

	var report models.ExpenseReport
	if err := config.DB.Where("report_id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense report not found"})
		return
	}

	var req models.ExpenseReportUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AmountSpent != nil && req.AmountSpent.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_spent must not be negative"})
		return
	}

	if req.GoalID != nil {
		var goal models.FundraisingGoal
		if err := config.DB.Where("goal_id = ?", *req.GoalID).First(&goal).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fundraising goal not found"})
			return
		}
	}

	var oldDoc, newDoc string
	if _, header, ferr := c.Request.FormFile("document"); ferr == nil {
		path, serr := saveUpload(c, header, bucketExpenseDocs, documentTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		if report.DocumentPath != nil {
			oldDoc = *report.DocumentPath
		}
		newDoc = path
		name := header.Filename
		report.DocumentName = &name
		report.DocumentPath = &path
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	if req.ReportType != nil {
		report.ReportType = *req.ReportType
	}
	if req.AmountSpent != nil {
		report.AmountSpent = *req.AmountSpent
	}
	if req.GoalID != nil {
		report.GoalID = *req.GoalID
	}
	if req.ReportDate != nil {
		report.ReportDate = *req.ReportDate
	}
	if req.IsPublished != nil {
		report.IsPublished = *req.IsPublished
	}

	if err := config.DB.Save(&report).Error; err != nil {
		removeStoredFile(newDoc)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense report"})
		return
	}

	if newDoc != "" {
		removeStoredFile(oldDoc)
	}

	config.DB.Preload("Goal").Preload("Photos").First(&report, report.ReportID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense report updated successfully",
		"data":    report,
	})
}

// SetExpenseReportPhotos - replace the photo set attached to a report
// (Admin only). Photos themselves are untouched.
func SetExpenseReportPhotos(c *gin.Context) {
	id := c.Param("id")

	var report models.ExpenseReport
	if err := config.DB.Where("report_id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense report not found"})
		return
	}

	var req models.ExpenseReportPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var photos []models.ExpensePhoto
	if len(req.PhotoIDs) > 0 {
		if err := config.DB.Where("photo_id IN ?", req.PhotoIDs).Find(&photos).Error; err != nil || len(photos) != len(req.PhotoIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more photos not found"})
			return
		}
	}

	if err := config.DB.Model(&report).Association("Photos").Replace(photos); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photos"})
		return
	}

	config.DB.Preload("Photos").First(&report, report.ReportID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense report photos updated successfully",
		"data":    report,
	})
}

// DeleteExpenseReport - remove report (Admin only). Join rows go, photos
// stay.
func DeleteExpenseReport(c *gin.Context) {
	id := c.Param("id")

	var report models.ExpenseReport
	if err := config.DB.Where("report_id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense report not found"})
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM expense_report_photos WHERE report_id = ?", report.ReportID,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&report).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense report"})
		return
	}

	if report.DocumentPath != nil {
		removeStoredFile(*report.DocumentPath)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense report deleted successfully",
	})
}
