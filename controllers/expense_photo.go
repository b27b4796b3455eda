package controllers

import (
	"net/http"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetExpensePhotos - admin list, searchable by title via q
func GetExpensePhotos(c *gin.Context) {
	query := config.DB.Model(&models.ExpensePhoto{})

	if q := c.Query("q"); q != "" {
		query = query.Where("title LIKE ?", "%"+q+"%")
	}

	var photos []models.ExpensePhoto
	if err := query.Order("created_at DESC").Find(&photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    photos,
		"count":   len(photos),
	})
}

// GetExpensePhoto - single photo by ID
func GetExpensePhoto(c *gin.Context) {
	id := c.Param("id")

	var photo models.ExpensePhoto
	if err := config.DB.Where("photo_id = ?", id).First(&photo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense photo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    photo,
	})
}

// CreateExpensePhoto - upload a photo (Admin only), "image" part required
func CreateExpensePhoto(c *gin.Context) {
	var req models.ExpensePhotoCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	path, serr := saveUpload(c, header, bucketExpensePhotos, imageTypes)
	if serr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
		return
	}

	photo := models.ExpensePhoto{
		Title:       req.Title,
		ImagePath:   path,
		Description: req.Description,
	}

	if err := config.DB.Create(&photo).Error; err != nil {
		removeStoredFile(path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Expense photo created successfully",
		"data":    photo,
	})
}

// UpdateExpensePhoto - edit title/description, optionally replace the image
// (Admin only)
func UpdateExpensePhoto(c *gin.Context) {
	id := c.Param("id")

	var photo models.ExpensePhoto
	if err := config.DB.Where("photo_id = ?", id).First(&photo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense photo not found"})
		return
	}

	var req models.ExpensePhotoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var oldImage, newImage string
	if _, header, ferr := c.Request.FormFile("image"); ferr == nil {
		path, serr := saveUpload(c, header, bucketExpensePhotos, imageTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		oldImage = photo.ImagePath
		newImage = path
		photo.ImagePath = path
	}

	if req.Title != nil {
		photo.Title = *req.Title
	}
	if req.Description != nil {
		photo.Description = *req.Description
	}

	if err := config.DB.Save(&photo).Error; err != nil {
		removeStoredFile(newImage)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense photo"})
		return
	}

	if newImage != "" {
		removeStoredFile(oldImage)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense photo updated successfully",
		"data":    photo,
	})
}

// DeleteExpensePhoto - remove photo (Admin only). Reports referencing it
// keep their other photos; the join rows for this photo are cleared.
func DeleteExpensePhoto(c *gin.Context) {
	id := c.Param("id")

	var photo models.ExpensePhoto
	if err := config.DB.Where("photo_id = ?", id).First(&photo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense photo not found"})
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM expense_report_photos WHERE photo_id = ?", photo.PhotoID,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&photo).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense photo"})
		return
	}

	removeStoredFile(photo.ImagePath)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense photo deleted successfully",
	})
}
