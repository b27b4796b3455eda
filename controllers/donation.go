// controllers/donation.go
package controllers

import (
	"fmt"
	"net/http"

	"charity-foundation-api/config"
	"charity-foundation-api/models"
	"charity-foundation-api/utils"

	"github.com/gin-gonic/gin"
)

// GetDonations - admin list, newest first.
// Filters: payment_method, payment_status, created_after, created_before.
// Free-text search over donor name and email via q.
func GetDonations(c *gin.Context) {
	query := config.DB.Model(&models.Donation{}).Preload("Goal")

	if method := c.Query("payment_method"); method != "" {
		query = query.Where("payment_method = ?", method)
	}
	if status := c.Query("payment_status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}
	if after := c.Query("created_after"); after != "" {
		query = query.Where("created_at >= ?", after)
	}
	if before := c.Query("created_before"); before != "" {
		query = query.Where("created_at <= ?", before)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("donor_name LIKE ? OR donor_email LIKE ?", like, like)
	}

	var donations []models.Donation
	if err := query.Order("created_at DESC").Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    donations,
		"count":   len(donations),
	})
}

// GetDonation - single donation by ID
func GetDonation(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := config.DB.Preload("Goal").
		Where("donation_id = ?", id).First(&donation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    donation,
	})
}

// CreateDonation - record a donation (Admin only)
func CreateDonation(c *gin.Context) {
	var req models.DonationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	if req.GoalID != nil {
		var goal models.FundraisingGoal
		if err := config.DB.Where("goal_id = ?", *req.GoalID).First(&goal).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fundraising goal not found"})
			return
		}
	}

	donation := models.Donation{
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		DonorPhone:    req.DonorPhone,
		Amount:        req.Amount,
		GoalID:        req.GoalID,
		Message:       req.Message,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: utils.DefaultString(req.PaymentStatus, models.PaymentStatusPending),
	}
	if req.IsAnonymous != nil {
		donation.IsAnonymous = *req.IsAnonymous
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Donation created successfully",
		"data":    donation,
	})
}

// UpdateDonation - edit donation (Admin only). Payment status changes only
// happen here; there is no gateway callback.
func UpdateDonation(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := config.DB.Where("donation_id = ?", id).First(&donation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	var req models.DonationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	if req.GoalID != nil {
		var goal models.FundraisingGoal
		if err := config.DB.Where("goal_id = ?", *req.GoalID).First(&goal).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fundraising goal not found"})
			return
		}
	}

	if req.DonorName != nil {
		donation.DonorName = *req.DonorName
	}
	if req.DonorEmail != nil {
		donation.DonorEmail = *req.DonorEmail
	}
	if req.DonorPhone != nil {
		donation.DonorPhone = *req.DonorPhone
	}
	if req.Amount != nil {
		donation.Amount = *req.Amount
	}
	if req.ClearGoal != nil && *req.ClearGoal {
		donation.GoalID = nil
	} else if req.GoalID != nil {
		donation.GoalID = req.GoalID
	}
	if req.Message != nil {
		donation.Message = *req.Message
	}
	if req.PaymentMethod != nil {
		donation.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		donation.PaymentStatus = *req.PaymentStatus
	}
	if req.IsAnonymous != nil {
		donation.IsAnonymous = *req.IsAnonymous
	}

	if err := config.DB.Save(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Donation updated successfully",
		"data":    donation,
	})
}

// DeleteDonation - remove donation (Admin only)
func DeleteDonation(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := config.DB.Where("donation_id = ?", id).First(&donation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	if err := config.DB.Delete(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Donation deleted successfully",
	})
}

// SendDonationReceipt - mail a thank-you to the donor (Admin only).
// Refused for anonymous donations and donations without an email.
func SendDonationReceipt(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := config.DB.Preload("Goal").
		Where("donation_id = ?", id).First(&donation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	if donation.IsAnonymous {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Donation is anonymous"})
		return
	}
	if donation.DonorEmail == "" || !utils.ValidateEmail(donation.DonorEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Donation has no valid donor email"})
		return
	}

	var info models.FoundationInfo
	foundationName := "Charity Foundation"
	if err := config.DB.First(&info, models.FoundationInfoID).Error; err == nil {
		foundationName = info.Name
	}

	subject := fmt.Sprintf("Thank you for your donation to %s", foundationName)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>We received your donation of %s. Thank you for your support!</p>",
		donation.DisplayName(), donation.Amount.StringFixed(2),
	)
	if donation.Goal != nil {
		body += fmt.Sprintf("<p>Your contribution goes toward: %s</p>", donation.Goal.Title)
	}
	body += fmt.Sprintf("<p>%s</p>", foundationName)

	if err := config.SendMail([]string{donation.DonorEmail}, subject, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send receipt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Receipt sent successfully",
	})
}
