// controllers/news.go
package controllers

import (
	"net/http"
	"time"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNews - admin list, newest published_date first.
// Filters: published=true|false, published_after, published_before (RFC3339
// or YYYY-MM-DD). Free-text search over title and content via q.
func GetNews(c *gin.Context) {
	query := config.DB.Model(&models.News{})

	if published := c.Query("published"); published != "" {
		query = query.Where("is_published = ?", published == "true")
	}
	if after := c.Query("published_after"); after != "" {
		query = query.Where("published_date >= ?", after)
	}
	if before := c.Query("published_before"); before != "" {
		query = query.Where("published_date <= ?", before)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	var news []models.News
	if err := query.Order("published_date DESC").Find(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    news,
		"count":   len(news),
	})
}

// GetPublishedNews - public list, published records only
func GetPublishedNews(c *gin.Context) {
	var news []models.News
	if err := config.DB.Where("is_published = ?", true).
		Order("published_date DESC").
		Find(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    news,
		"count":   len(news),
	})
}

// GetNewsItem - single record by ID
func GetNewsItem(c *gin.Context) {
	id := c.Param("id")

	var item models.News
	if err := config.DB.Where("news_id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// ReadNewsItem - public detail read; every hit bumps the view counter
func ReadNewsItem(c *gin.Context) {
	id := c.Param("id")

	var item models.News
	if err := config.DB.Where("news_id = ? AND is_published = ?", id, true).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if err := config.DB.Model(&item).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error; err == nil {
		item.ViewsCount++
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// CreateNews - new post (Admin only), optional "image" multipart part
func CreateNews(c *gin.Context) {
	var req models.NewsCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.News{
		Title:         req.Title,
		Content:       req.Content,
		PublishedDate: time.Now(),
		IsPublished:   true,
	}
	if req.PublishedDate != nil {
		item.PublishedDate = *req.PublishedDate
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}

	if _, header, ferr := c.Request.FormFile("image"); ferr == nil {
		path, serr := saveUpload(c, header, bucketNews, imageTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		item.ImagePath = &path
	}

	if err := config.DB.Create(&item).Error; err != nil {
		if item.ImagePath != nil {
			removeStoredFile(*item.ImagePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "News created successfully",
		"data":    item,
	})
}

// UpdateNews - edit post (Admin only)
func UpdateNews(c *gin.Context) {
	id := c.Param("id")

	var item models.News
	if err := config.DB.Where("news_id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	var req models.NewsUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var oldImage, newImage string
	if _, header, ferr := c.Request.FormFile("image"); ferr == nil {
		path, serr := saveUpload(c, header, bucketNews, imageTypes)
		if serr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
			return
		}
		if item.ImagePath != nil {
			oldImage = *item.ImagePath
		}
		newImage = path
		item.ImagePath = &path
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.PublishedDate != nil {
		item.PublishedDate = *req.PublishedDate
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}

	if err := config.DB.Save(&item).Error; err != nil {
		removeStoredFile(newImage)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}

	if newImage != "" {
		removeStoredFile(oldImage)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News updated successfully",
		"data":    item,
	})
}

// DeleteNews - remove post (Admin only)
func DeleteNews(c *gin.Context) {
	id := c.Param("id")

	var item models.News
	if err := config.DB.Where("news_id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}

	if item.ImagePath != nil {
		removeStoredFile(*item.ImagePath)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "News deleted successfully",
	})
}
