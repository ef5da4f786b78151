package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"halaqat/config"
	"halaqat/delivery"
	"halaqat/middleware"
	"halaqat/repository"
	"halaqat/service"
	"halaqat/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	// Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// JWT secret validation
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET not found in .env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("❌ JWT_SECRET must be at least 32 characters for security. Generate one with: openssl rand -base64 32")
	}

	// Storage backend: postgres, mongodb or in-memory, picked from env
	store, err := repository.NewStorage()
	if err != nil {
		log.Fatal("❌ Failed to initialize storage: ", err)
	}

	// Redis is optional; without it the rate limiter passes everything through
	rateLimiter := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		middleware.InitRateLimiter(redisClient)
		rateLimiter = middleware.RateLimiter()
	}

	// Init services
	authService := service.NewAuthService(store, jwtSecret)
	teacherService := service.NewTeacherUseCase(store)
	studentService := service.NewStudentUseCase(store)
	recordService := service.NewDailyRecordUseCase(store)
	quranErrorService := service.NewQuranErrorUseCase(store)

	// Init Gin
	app := gin.Default()
	config.InitMiddleware(app)

	delivery.NewAuthHandler(app, authService, rateLimiter)
	delivery.NewTeacherHandler(app, teacherService)
	delivery.NewStudentHandler(app, studentService)
	delivery.NewDailyRecordHandler(app, recordService)
	delivery.NewQuranErrorHandler(app, quranErrorService)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srvAddr := ":" + port

	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("🚀 Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
