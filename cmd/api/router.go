package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "fintrack-backend/internal/auth/delivery"
	authUsecase "fintrack-backend/internal/auth/usecase"
	financeDelivery "fintrack-backend/internal/finance/delivery"
	financeUsecase "fintrack-backend/internal/finance/usecase"
	"fintrack-backend/pkg/config"
)

// SetupRoutes mounts every API route on the given engine.
func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, financeUc financeUsecase.FinanceUsecase, cfg *config.Config) {
	authHandler := authDelivery.NewAuthHandler(authUc, cfg)
	financeHandler := financeDelivery.NewFinanceHandler(financeUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
			auth.PUT("/update-details", authDelivery.AuthMiddleware(authUc), authHandler.UpdateDetails)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.PUT("/reset-password/:resetToken", authHandler.ResetPassword)
			auth.POST("/update-password", authDelivery.AuthMiddleware(authUc), authHandler.UpdatePassword)
			auth.PUT("/email-verification/:verifiedToken", authHandler.VerifyEmail)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(authDelivery.AuthMiddleware(authUc))
		{
			categories.GET("", financeHandler.ListCategories)
			categories.POST("", financeHandler.CreateCategory)
			categories.GET("/:id", financeHandler.GetCategory)
			categories.PUT("/:id", financeHandler.UpdateCategory)
			categories.DELETE("/:id", financeHandler.DeleteCategory)
		}

		// Expense routes (protected)
		expenses := api.Group("/expenses")
		expenses.Use(authDelivery.AuthMiddleware(authUc))
		{
			expenses.GET("", financeHandler.ListExpenses)
			expenses.POST("", financeHandler.CreateExpense)
			expenses.GET("/:id", financeHandler.GetExpense)
			expenses.PUT("/:id", financeHandler.UpdateExpense)
			expenses.DELETE("/:id", financeHandler.DeleteExpense)
		}

		// Income routes (protected)
		incomes := api.Group("/incomes")
		incomes.Use(authDelivery.AuthMiddleware(authUc))
		{
			incomes.GET("", financeHandler.ListIncomes)
			incomes.POST("", financeHandler.CreateIncome)
			incomes.GET("/:id", financeHandler.GetIncome)
			incomes.PUT("/:id", financeHandler.UpdateIncome)
			incomes.DELETE("/:id", financeHandler.DeleteIncome)
		}
	}
}
