package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"eduportal/config"
	"eduportal/handlers"
	activity_handlers "eduportal/handlers/activity"
	auth_handlers "eduportal/handlers/auth"
	course_handlers "eduportal/handlers/course"
	inquiry_handlers "eduportal/handlers/inquiry"
	notice_handlers "eduportal/handlers/notice"
	user_handlers "eduportal/handlers/user"
	"eduportal/store"
	"eduportal/utils/auth"
	"eduportal/utils/cache"
	"eduportal/utils/metrics"
	"eduportal/utils/middleware"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Env      *config.EnviornmentVariable
	Health   handlers.HealthChecker
	Records  *store.RecordStore
	Redis    *cache.RedisCache
	Uploader notice_handlers.Uploader
}

// SetupRoutes wires middleware, handlers and the route tree.
func SetupRoutes(app *fiber.App, deps Deps) {
	// Security middleware first, then per-request metrics
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    deps.Env.ALLOWED_ORIGINS,
		RateLimitRequests: deps.Env.RATE_LIMIT_REQUESTS,
		RateLimitWindow:   time.Minute,
	})
	app.Use(metrics.Middleware())

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: deps.Env.JWT_SECRET,
		Expiry: time.Duration(deps.Env.JWT_EXPIRY_HOURS) * time.Hour,
		Issuer: deps.Env.JWT_ISSUER,
	})

	var bruteForce *middleware.BruteForceProtection
	if deps.Redis != nil {
		bruteForce = middleware.NewBruteForceProtection(deps.Redis)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, deps.Records)

	healthHandler := handlers.NewHealthHandler(deps.Health, deps.Redis)
	authHandler := auth_handlers.NewAuthHandler(deps.Records, jwtManager, bruteForce)
	userHandler := user_handlers.NewUserHandler(deps.Records)
	courseHandler := course_handlers.NewCourseHandler(deps.Records)
	noticeHandler := notice_handlers.NewNoticeHandler(deps.Records, deps.Uploader)
	inquiryHandler := inquiry_handlers.NewInquiryHandler(deps.Records)
	activityHandler := activity_handlers.NewActivityHandler(deps.Records)

	app.Get("/ping", healthHandler.Ping)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api/v1")

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForce != nil {
		authGroup.Post("/login", bruteForce.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/logout", authMiddleware.Optional(), authHandler.Logout)
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Own profile
	api.Get("/profile", authMiddleware.Required(), authHandler.Me)
	api.Put("/profile", authMiddleware.Required(), userHandler.UpdateProfile)
	api.Delete("/profile", authMiddleware.Required(), userHandler.DeleteProfile)

	// User administration
	users := api.Group("/users", authMiddleware.RequireAdmin())
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)
	users.Get("/:id/activity", activityHandler.ForUser)

	// Course catalog
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.List)
	courses.Get("/:id", courseHandler.Get)
	courses.Post("/", authMiddleware.RequireAdmin(), courseHandler.Create)
	courses.Put("/:id", authMiddleware.RequireAdmin(), courseHandler.Update)
	courses.Delete("/:id", authMiddleware.RequireAdmin(), courseHandler.Delete)
	courses.Post("/:id/enroll", authMiddleware.Required(), courseHandler.Enroll)
	courses.Put("/:id/progress", authMiddleware.Required(), courseHandler.SetProgress)

	// Notice board
	notices := api.Group("/notices")
	notices.Get("/", noticeHandler.List)
	notices.Get("/:id", noticeHandler.Get)
	notices.Post("/", authMiddleware.RequireAdmin(), noticeHandler.Create)
	notices.Put("/:id", authMiddleware.RequireAdmin(), noticeHandler.Update)
	notices.Delete("/:id", authMiddleware.RequireAdmin(), noticeHandler.Delete)
	notices.Post("/:id/attachments", authMiddleware.RequireAdmin(), noticeHandler.UploadAttachment)

	// Inquiries
	inquiries := api.Group("/inquiries")
	inquiries.Post("/", authMiddleware.Optional(), inquiryHandler.Create)
	inquiries.Get("/", authMiddleware.RequireAdmin(), inquiryHandler.List)
	inquiries.Get("/:id", authMiddleware.RequireAdmin(), inquiryHandler.Get)
	inquiries.Put("/:id/status", authMiddleware.RequireAdmin(), inquiryHandler.UpdateStatus)

	// Activity log
	api.Get("/activity", authMiddleware.RequireAdmin(), activityHandler.List)

	// Logged-in user's views
	me := api.Group("/me", authMiddleware.Required())
	me.Get("/courses", courseHandler.MyCourses)
	me.Get("/inquiries", inquiryHandler.Mine)
	me.Get("/activity", activityHandler.Mine)
}
