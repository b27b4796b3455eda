package routes

import (
	"charity-foundation-api/controllers"
	"charity-foundation-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Charity Foundation API is running",
				})
			})

			// Public site data
			public.GET("/foundation", controllers.GetFoundationInfo)
			public.GET("/news", controllers.GetPublishedNews)
			public.GET("/news/:id", controllers.ReadNewsItem)
			public.GET("/goals", controllers.GetActiveFundraisingGoals)
			public.GET("/goals/:id", controllers.GetFundraisingGoal)
			public.GET("/expense-reports", controllers.GetPublishedExpenseReports)
			public.GET("/expense-reports/:id", controllers.ReadExpenseReport)
		}

		// Admin routes (require authentication)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			// Account
			admin.GET("/profile", controllers.GetProfile)
			admin.PUT("/change-password", controllers.ChangePassword)

			// Foundation profile (singleton, upsert only)
			admin.GET("/foundation", controllers.GetFoundationInfo)
			admin.PUT("/foundation", controllers.UpdateFoundationInfo)

			// News
			news := admin.Group("/news")
			{
				news.GET("", controllers.GetNews)
				news.GET("/:id", controllers.GetNewsItem)
				news.POST("", controllers.CreateNews)
				news.PUT("/:id", controllers.UpdateNews)
				news.DELETE("/:id", controllers.DeleteNews)
			}

			// Fundraising goals
			goals := admin.Group("/goals")
			{
				goals.GET("", controllers.GetFundraisingGoals)
				goals.GET("/:id", controllers.GetFundraisingGoal)
				goals.POST("", controllers.CreateFundraisingGoal)
				goals.PUT("/:id", controllers.UpdateFundraisingGoal)
				goals.DELETE("/:id", controllers.DeleteFundraisingGoal)
			}

			// Donations
			donations := admin.Group("/donations")
			{
				donations.GET("", controllers.GetDonations)
				donations.GET("/:id", controllers.GetDonation)
				donations.POST("", controllers.CreateDonation)
				donations.PUT("/:id", controllers.UpdateDonation)
				donations.DELETE("/:id", controllers.DeleteDonation)
				donations.POST("/:id/receipt", controllers.SendDonationReceipt)
			}

			// Expense reports
			reports := admin.Group("/expense-reports")
			{
				reports.GET("", controllers.GetExpenseReports)
				reports.GET("/:id", controllers.GetExpenseReport)
				reports.POST("", controllers.CreateExpenseReport)
				reports.PUT("/:id", controllers.UpdateExpenseReport)
				reports.PUT("/:id/photos", controllers.SetExpenseReportPhotos)
				reports.DELETE("/:id", controllers.DeleteExpenseReport)
			}

			// Expense photos
			photos := admin.Group("/expense-photos")
			{
				photos.GET("", controllers.GetExpensePhotos)
				photos.GET("/:id", controllers.GetExpensePhoto)
				photos.POST("", controllers.CreateExpensePhoto)
				photos.PUT("/:id", controllers.UpdateExpensePhoto)
				photos.DELETE("/:id", controllers.DeleteExpensePhoto)
			}

			// Dashboard
			admin.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}
}
