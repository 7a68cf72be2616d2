package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	middleware.InitJWT(cfg.JWTSecret)

	if cfg.ChatAPIKey == "" {
		log.Println("CHAT_API_KEY not set; chat companion disabled")
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	log.Println("database connection established, migrations applied")

	// Services
	roomService := services.NewRoomService(db)
	customerService := services.NewCustomerService(db)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db)
	transactionService := services.NewTransactionService(db)
	reportService := services.NewReportService(db)
	userService := services.NewUserService(db)
	chatService := services.NewChatService(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatSystemPrompt)

	// Controllers
	authController := controllers.NewAuthController(userService)
	roomController := controllers.NewRoomController(roomService)
	customerController := controllers.NewCustomerController(customerService)
	reservationController := controllers.NewReservationController(reservationService, availabilityService)
	transactionController := controllers.NewTransactionController(transactionService)
	reportController := controllers.NewReportController(reportService)
	userController := controllers.NewUserController(userService)
	chatController := controllers.NewChatController(chatService)

	router := routes.SetupRouter(
		authController,
		roomController,
		customerController,
		reservationController,
		transactionController,
		reportController,
		userController,
		chatController,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
