// controllers/foundation.go
package controllers

import (
	"errors"
	"net/http"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFoundationInfo - the single foundation profile
func GetFoundationInfo(c *gin.Context) {
	var info models.FoundationInfo
	if err := config.DB.First(&info, models.FoundationInfoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Foundation profile not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    info,
	})
}

// UpdateFoundationInfo - upsert of the singleton profile (Admin only).
// Creates the row with the fixed ID on first call, updates it afterwards.
// Accepts optional "logo" and "qr_code" multipart files.
func UpdateFoundationInfo(c *gin.Context) {
	var req models.FoundationInfoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var info models.FoundationInfo
	err := config.DB.First(&info, models.FoundationInfoID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load foundation profile"})
			return
		}
		info = models.FoundationInfo{ID: models.FoundationInfoID}
	}

	// Replace images if new ones were uploaded
	var oldLogo, oldQR, newLogo, newQR string
	if _, header, ferr := c.Request.FormFile("logo"); ferr == nil {
		path, serr := saveUpload(c, header, bucketFoundation, imageTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		oldLogo = info.LogoPath
		newLogo = path
		info.LogoPath = path
	}
	if _, header, ferr := c.Request.FormFile("qr_code"); ferr == nil {
		path, serr := saveUpload(c, header, bucketFoundation, imageTypes)
		if serr != nil {
			removeStoredFile(newLogo)
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		oldQR = info.QRCodePath
		newQR = path
		info.QRCodePath = path
	}

	if req.Name != nil {
		info.Name = *req.Name
	}
	if req.Description != nil {
		info.Description = *req.Description
	}
	if req.Mission != nil {
		info.Mission = *req.Mission
	}
	if req.Phone != nil {
		info.Phone = *req.Phone
	}
	if req.Email != nil {
		info.Email = *req.Email
	}
	if req.Address != nil {
		info.Address = *req.Address
	}
	if req.INN != nil {
		info.INN = *req.INN
	}
	if req.BankAccount != nil {
		info.BankAccount = *req.BankAccount
	}
	if req.BankName != nil {
		info.BankName = *req.BankName
	}
	if req.BIK != nil {
		info.BIK = *req.BIK
	}
	if req.CorrAccount != nil {
		info.CorrAccount = *req.CorrAccount
	}

	if err := config.DB.Save(&info).Error; err != nil {
		removeStoredFile(newLogo)
		removeStoredFile(newQR)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save foundation profile"})
		return
	}

	if newLogo != "" {
		removeStoredFile(oldLogo)
	}
	if newQR != "" {
		removeStoredFile(oldQR)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Foundation profile saved successfully",
		"data":    info,
	})
}
