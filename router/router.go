package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsportal/config"
	"newsportal/database"
	"newsportal/handlers"
	"newsportal/helper"
	"newsportal/logging"
	"newsportal/middleware"
	"newsportal/policy"
	"newsportal/ratelimit"
	"newsportal/repositories"
	"newsportal/services"
	"newsportal/telemetry"
)

// Options carries the long-lived dependencies the HTTP layer is built on.
type Options struct {
	Config    *config.Config
	DB        *database.DB
	Limiter   ratelimit.Limiter
	Telemetry *telemetry.Telemetry
}

// New wires repositories, services and handlers and registers every route.
func New(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	loc, err := cfg.Server.Location()
	if err != nil {
		return nil, err
	}

	var metrics *telemetry.Metrics
	if opts.Telemetry != nil {
		metrics = opts.Telemetry.Metrics
	}

	db := opts.DB.DB

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, &cfg.JWT)
	categoryService := services.NewCategoryService(categoryRepo, articleRepo, metrics)
	articleService := services.NewArticleService(articleRepo, categoryRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)
	blogService := services.NewBlogService(blogRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo, blogRepo, nil, metrics)
	statsService := services.NewStatsService(statsRepo, loc, nil)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	h := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, h)
	categoryHandler := handlers.NewCategoryHandler(categoryService, h)
	articleHandler := handlers.NewArticleHandler(articleService, h)
	tagHandler := handlers.NewTagHandler(tagService, h)
	blogHandler := handlers.NewBlogHandler(blogService, h)
	commentHandler := handlers.NewCommentHandler(commentService, h)
	statsHandler := handlers.NewStatsHandler(statsService, h)
	userHandler := handlers.NewUserHandler(userService, h)
	healthHandler := handlers.NewHealthHandler(opts.DB)

	authn := middleware.NewAuthenticator(authService, h)
	allow := authn.Authorize

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	middleware.Security(router, cfg.Server.AllowedOrigins, cfg.Server.Mode == gin.ReleaseMode)
	router.Use(logging.RequestLogger())
	router.Use(metrics.Middleware())

	router.GET("/health", healthHandler.Check)
	if opts.Telemetry != nil {
		if metricsHandler := opts.Telemetry.Handler(); metricsHandler != nil {
			router.GET("/metrics", gin.WrapH(metricsHandler))
		}
	}

	throttle := middleware.RateLimit(opts.Limiter, h, metrics)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", throttle, authHandler.Register)
			auth.POST("/login", throttle, authHandler.Login)
			auth.GET("/me", authn.Auth(), authHandler.Me)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/tree", categoryHandler.GetTree)
			categories.GET("/:slug/articles", categoryHandler.GetCategoryArticles)
			categories.POST("", authn.Auth(), allow(policy.Categories, policy.Create), categoryHandler.CreateCategory)
			categories.PUT("/:id", authn.Auth(), allow(policy.Categories, policy.Update), categoryHandler.UpdateCategory)
			categories.DELETE("/:id", authn.Auth(), allow(policy.Categories, policy.Delete), categoryHandler.DeleteCategory)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetPublicArticles)
			articles.GET("/trending", articleHandler.GetHighlights(services.HighlightTrending))
			articles.GET("/featured", articleHandler.GetHighlights(services.HighlightFeatured))
			articles.GET("/breaking", articleHandler.GetHighlights(services.HighlightBreaking))
			articles.GET("/:slug", articleHandler.GetPublicArticle)
			articles.POST("", authn.Auth(), allow(policy.Articles, policy.Create), articleHandler.CreateArticle)
			articles.PUT("/:id", authn.Auth(), allow(policy.Articles, policy.Update), articleHandler.UpdateArticle)
			articles.DELETE("/:id", authn.Auth(), allow(policy.Articles, policy.Delete), articleHandler.DeleteArticle)
		}

		api.GET("/tags", tagHandler.GetTags)

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.GetPublicBlogs)
			blogs.GET("/:slug", blogHandler.GetPublicBlog)
			blogs.POST("", authn.Auth(), allow(policy.Blogs, policy.Create), blogHandler.CreateBlog)
			blogs.PUT("/:id", authn.Auth(), allow(policy.Blogs, policy.Update), blogHandler.UpdateBlog)
			blogs.DELETE("/:id", authn.Auth(), allow(policy.Blogs, policy.Delete), blogHandler.DeleteBlog)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", throttle, authn.OptionalAuth(), commentHandler.SubmitComment)
			comments.GET("/article/:articleId", commentHandler.GetArticleComments)
			comments.GET("/blog/:blogId", commentHandler.GetBlogComments)

			moderated := comments.Group("", authn.Auth())
			moderated.GET("", allow(policy.Comments, policy.Read), commentHandler.GetComments)
			moderated.PUT("/:id/approve", allow(policy.Comments, policy.Moderate), commentHandler.ApproveComment)
			moderated.PUT("/:id/reject", allow(policy.Comments, policy.Moderate), commentHandler.RejectComment)
			moderated.PUT("/:id/spam", allow(policy.Comments, policy.Moderate), commentHandler.MarkSpam)
			moderated.DELETE("/:id", allow(policy.Comments, policy.Delete), commentHandler.DeleteComment)
		}

		admin := api.Group("/admin", authn.Auth())
		{
			admin.GET("/stats", allow(policy.Stats, policy.Read), statsHandler.GetOverview)

			admin.GET("/articles", allow(policy.Articles, policy.Read), articleHandler.GetArticles)
			admin.GET("/articles/:id", allow(policy.Articles, policy.Read), articleHandler.GetArticle)
			admin.GET("/blogs", allow(policy.Blogs, policy.Read), blogHandler.GetBlogs)
			admin.GET("/blogs/:id", allow(policy.Blogs, policy.Read), blogHandler.GetBlog)

			admin.GET("/users", allow(policy.Users, policy.Read), userHandler.GetUsers)
			admin.GET("/users/:id/role", allow(policy.Users, policy.Read), userHandler.GetUserRole)
			admin.PUT("/users/:id/role", allow(policy.Users, policy.Update), userHandler.UpdateUserRole)
			admin.DELETE("/users/:id", allow(policy.Users, policy.Delete), userHandler.DeleteUser)
		}

		analytics := api.Group("/analytics", authn.Auth(), allow(policy.Stats, policy.Read))
		{
			analytics.GET("/dashboard", statsHandler.GetDashboard)
			analytics.GET("/traffic", statsHandler.GetTraffic)
			analytics.GET("/comments", statsHandler.GetCommentActivity)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		h.SendErrorMessage(c, http.StatusNotFound, "Route not found")
	})

	return router, nil
}
