package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/entity"
	"counselconnect/internal/handler/http/middleware"
	"counselconnect/internal/infrastructure/metrics"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// Router wires handlers onto the gin engine.
type Router struct {
	userUsecase usecasecontract.IUserUseCase

	userHandler      *UserHandler
	authHandler      *AuthHandler
	blogHandler      *BlogHandler
	commentHandler   *CommentHandler
	groupHandler     *GroupHandler
	chatHandler      *ChatHandler
	dashboardHandler *DashboardHandler

	allowedOrigins []string
	rateLimitRPS   float64
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	userHandler *UserHandler,
	authHandler *AuthHandler,
	blogHandler *BlogHandler,
	commentHandler *CommentHandler,
	groupHandler *GroupHandler,
	chatHandler *ChatHandler,
	dashboardHandler *DashboardHandler,
	allowedOrigins []string,
	rateLimitRPS float64,
) *Router {
	return &Router{
		userUsecase:      userUsecase,
		userHandler:      userHandler,
		authHandler:      authHandler,
		blogHandler:      blogHandler,
		commentHandler:   commentHandler,
		groupHandler:     groupHandler,
		chatHandler:      chatHandler,
		dashboardHandler: dashboardHandler,
		allowedOrigins:   allowedOrigins,
		rateLimitRPS:     rateLimitRPS,
	}
}

// SetupRoutes registers middleware and every API route.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = r.allowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsConfig))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.RateLimit(r.rateLimitRPS))

	engine.GET("/metrics", metrics.Handler())
	engine.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	authed := middleware.AuthMiddleWare(r.userUsecase)
	adminOnly := middleware.RequireRoles(entity.RoleAdmin)

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.userHandler.Register)
			auth.POST("/verify-otp", r.userHandler.VerifyOTP)
			auth.POST("/resend-otp", r.userHandler.ResendOTP)
			auth.POST("/login", r.userHandler.Login)
			auth.POST("/refresh", r.userHandler.RefreshToken)
			auth.POST("/logout", r.userHandler.Logout)
			auth.GET("/google", r.authHandler.HandleGoogleLogin)
			auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
		}

		users := v1.Group("/users", authed)
		{
			users.GET("/me", r.userHandler.GetCurrentUser)
			users.PUT("/me", r.userHandler.UpdateProfile)
			users.GET("/:id", r.userHandler.GetUser)
		}

		blogs := v1.Group("/blogs")
		{
			blogs.GET("", r.blogHandler.GetBlogs)
			blogs.GET("/featured", r.blogHandler.GetFeaturedBlogs)
			blogs.GET("/tags/popular", r.blogHandler.GetPopularTags)
			blogs.GET("/:id", r.blogHandler.GetBlog)
			blogs.GET("/:id/related", r.blogHandler.GetRelatedBlogs)
			blogs.GET("/:id/comments", r.commentHandler.GetComments)

			blogs.POST("", authed, r.blogHandler.CreateBlog)
			blogs.POST("/generate", authed, adminOnly, r.blogHandler.GenerateBlog)
			blogs.PUT("/:id", authed, r.blogHandler.UpdateBlog)
			blogs.DELETE("/:id", authed, r.blogHandler.DeleteBlog)
			blogs.POST("/:id/comments", authed, r.commentHandler.CreateComment)
		}

		comments := v1.Group("/comments", authed)
		{
			comments.PUT("/:commentId", r.commentHandler.UpdateComment)
			comments.DELETE("/:commentId", r.commentHandler.DeleteComment)
		}

		groups := v1.Group("/groups", authed)
		{
			groups.POST("", r.groupHandler.CreateGroup)
			groups.GET("", r.groupHandler.GetGroups)
			groups.GET("/tags/popular", r.groupHandler.GetPopularTags)
			groups.GET("/:id", r.groupHandler.GetGroup)
			groups.POST("/:id/join", r.groupHandler.JoinGroup)
			groups.POST("/:id/leave", r.groupHandler.LeaveGroup)
			groups.POST("/:id/rate", r.groupHandler.RateUser)
		}

		chats := v1.Group("/chats", authed)
		{
			chats.GET("", r.chatHandler.GetUserChats)
			chats.GET("/pending", r.chatHandler.GetPendingRequests)
			chats.POST("/requests", r.chatHandler.SendFriendRequest)
			chats.POST("/requests/:id/respond", r.chatHandler.RespondFriendRequest)
			chats.POST("/messages", r.chatHandler.SendMessage)
			chats.GET("/:id", r.chatHandler.GetConversation)
		}

		pages := v1.Group("/pages")
		{
			pages.GET("", r.dashboardHandler.GetPages)
			pages.GET("/:type", r.dashboardHandler.GetPage)
		}

		dashboard := v1.Group("/dashboard", authed, adminOnly)
		{
			dashboard.GET("/analytics", r.dashboardHandler.GetAnalytics)
			dashboard.GET("/users", r.dashboardHandler.ListUsers)
			dashboard.GET("/blogs", r.dashboardHandler.ListBlogs)
			dashboard.PATCH("/users/:id/ban", r.dashboardHandler.SetUserBan)
			dashboard.PATCH("/groups/:id/ban", r.dashboardHandler.SetGroupBan)
			dashboard.PUT("/pages/:type", r.dashboardHandler.UpdatePage)
		}
	}
}
