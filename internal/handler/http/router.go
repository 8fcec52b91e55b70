package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/handler/http/middleware"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/metrics"
	"github.com/mazboy1/frasa-backend/internal/usecase"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler        *UserHandler
	classHandler       *ClassHandler
	cartHandler        *CartHandler
	paymentHandler     *PaymentHandler
	adminHandler       *AdminHandler
	applicationHandler *ApplicationHandler
	healthHandler      *HealthHandler
	tokenService       usecase.TokenService
	userRepo           contract.IUserRepository
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	userUsecase usecasecontract.IUserUseCase,
	classUsecase usecasecontract.IClassUseCase,
	cartUsecase usecasecontract.ICartUseCase,
	checkoutUsecase usecasecontract.ICheckoutUseCase,
	statsUsecase usecasecontract.IStatsUseCase,
	applicationUsecase usecasecontract.IApplicationUseCase,
	feedbackUsecase usecasecontract.IFeedbackUseCase,
	tokenService usecase.TokenService,
	userRepo contract.IUserRepository,
	store Pinger,
) *Router {
	return &Router{
		userHandler:        NewUserHandler(authUsecase, userUsecase),
		classHandler:       NewClassHandler(classUsecase),
		cartHandler:        NewCartHandler(cartUsecase),
		paymentHandler:     NewPaymentHandler(checkoutUsecase),
		adminHandler:       NewAdminHandler(statsUsecase, feedbackUsecase),
		applicationHandler: NewApplicationHandler(applicationUsecase),
		healthHandler:      NewHealthHandler(store),
		tokenService:       tokenService,
		userRepo:           userRepo,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", r.healthHandler.Health)
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Frasa ID LMS Server is Running")
	})

	api := router.Group("/api")

	// Public routes (no authentication required)
	api.POST("/set-token", r.userHandler.SetToken)
	api.POST("/new-user", r.userHandler.CreateUser)
	api.GET("/user/:email", r.userHandler.GetUser)
	api.GET("/instructors", r.userHandler.ListInstructors)
	api.GET("/classes", r.classHandler.ApprovedCatalog)
	api.GET("/class/:id", r.classHandler.GetClass)
	api.POST("/create-payment-intent", r.paymentHandler.CreatePaymentIntent)

	// Routes requiring a bearer credential
	authed := api.Group("/")
	authed.Use(middleware.AuthMiddleWare(r.tokenService))
	{
		// Instructor listings are strictly personal: no admin bypass
		selfQuery := middleware.SelfOnly(middleware.QueryEmail)
		authed.GET("/instructor/my-classes", selfQuery, r.classHandler.MyClasses)
		authed.GET("/instructor/approved-classes", selfQuery, r.classHandler.ApprovedClasses)
		authed.GET("/instructor/pending-classes", selfQuery, r.classHandler.PendingClasses)
		authed.GET("/instructor/rejected-classes", selfQuery, r.classHandler.RejectedClasses)

		// Per-email resources: self, or instructor/admin
		selfParam := middleware.SelfOrPrivileged(r.userRepo, middleware.ParamEmail)
		authed.GET("/cart/:email", selfParam, r.cartHandler.GetCart)
		authed.GET("/enrolled-classes/:email", selfParam, r.paymentHandler.EnrolledClasses)
		authed.GET("/payment-history/:email", selfParam, r.paymentHandler.PaymentHistory)

		authed.POST("/add-to-cart", r.cartHandler.AddToCart)
		authed.DELETE("/cart/:id", r.cartHandler.RemoveFromCart)
		authed.POST("/payment-info", r.paymentHandler.PaymentInfo)
		authed.POST("/as-instructor", r.applicationHandler.Apply)
		authed.GET("/applied-instructors/:email", r.applicationHandler.GetApplication)

		// Instructor (or admin) routes
		instructor := authed.Group("/")
		instructor.Use(middleware.InstructorOnly(r.userRepo))
		{
			instructor.POST("/new-class", r.classHandler.CreateClass)
			instructor.PUT("/update-class/:id", r.classHandler.UpdateClass)
		}

		// Admin routes
		admin := authed.Group("/")
		admin.Use(middleware.AdminOnly(r.userRepo))
		{
			admin.GET("/users", r.userHandler.ListUsers)
			admin.PUT("/update-user/:id", r.userHandler.UpdateUser)
			admin.DELETE("/delete-user/:id", r.userHandler.DeleteUser)
			admin.GET("/classes-manage", r.classHandler.ManageClasses)
			admin.PATCH("/change-status/:id", r.classHandler.ChangeStatus)
			admin.GET("/applied", r.applicationHandler.ListApplications)
			admin.POST("/feedback", r.adminHandler.CreateFeedback)
			admin.GET("/admin-stats", r.adminHandler.AdminStats)
		}
	}
}
