package server

import (
	"time"

	"foodexchange-admin/internal/session"
	handler "foodexchange-admin/services/admin/handler"

	"github.com/gin-gonic/gin"
)

// Options configures the router's session handling
type Options struct {
	CookieName     string
	SessionTTL     time.Duration
	MaxUploadBytes int64
}

// SetupRouter configures all Gin routes for the application. Login,
// registration and the health check are public; everything else needs a
// logged-in session.
func SetupRouter(adminService handler.AdminServiceInterface, store session.Store, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging

	adminHandler := handler.NewAdminHandler(adminService, opts.CookieName, opts.MaxUploadBytes)

	router.GET("/healthz", adminHandler.HealthHandler)

	withSession := router.Group("")
	withSession.Use(SessionMiddleware(store, opts.CookieName, opts.SessionTTL))
	{
		withSession.POST("/auth/login", adminHandler.LoginHandler)
		withSession.POST("/register", adminHandler.RegisterHandler)
	}

	authed := withSession.Group("")
	authed.Use(AuthGate)

	auth := authed.Group("/auth")
	{
		auth.GET("/session", adminHandler.SessionHandler)
		auth.POST("/logout", adminHandler.LogoutHandler)
	}

	directory := authed.Group("/directory")
	{
		directory.GET("", adminHandler.DirectoryHandler)
		directory.PUT("/tab", adminHandler.SelectTabHandler)
		directory.PUT("/page", adminHandler.SelectPageHandler)
		directory.POST("/connections", adminHandler.ConnectHandler)
	}

	authed.GET("/profile", adminHandler.OwnProfileHandler)

	users := authed.Group("/users")
	{
		users.GET("/:user_id/profile", adminHandler.ProfileHandler)
		users.PATCH("/:user_id", adminHandler.UpdateProfileHandler)
		users.POST("/:user_id/posts/:post_id/bids/:bid_id/accept", adminHandler.AcceptBidHandler)
		users.POST("/:user_id/bids/:bid_id/reject", adminHandler.RejectBidHandler)
		users.POST("/:user_id/posts", adminHandler.CreatePostHandler)
	}

	posts := authed.Group("/posts")
	{
		posts.GET("/:post_id/delivery", adminHandler.DeliveryHandler)
		posts.PUT("/:post_id/delivery/:delivery_id", adminHandler.UpdateDeliveryHandler)
	}

	stories := authed.Group("/stories")
	{
		stories.GET("", adminHandler.ListStoriesHandler)
		stories.POST("", adminHandler.CreateStoryHandler)
	}

	authed.GET("/media/:post_id", adminHandler.PostImageHandler)
	authed.GET("/media/:post_id/:index", adminHandler.MediaHandler)

	authed.GET("/payment-types", adminHandler.PaymentTypesHandler)
	payments := authed.Group("/payments")
	{
		payments.GET("/:payment_id/file", adminHandler.PaymentFileHandler)
		payments.PUT("/:payment_id", adminHandler.UpdatePaymentHandler)
	}

	authed.GET("/deals", adminHandler.DealsHandler)
	authed.GET("/reports/profit", adminHandler.ProfitReportHandler)

	return router
}
