package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(config.EnvOrDefault("CORS_ORIGINS", ""))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the API surface.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	cc *controllers.CustomerController,
	resc *controllers.ReservationController,
	tc *controllers.TransactionController,
	repc *controllers.ReportController,
	uc *controllers.UserController,
	chc *controllers.ChatController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/auth/login", ac.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		rooms := authed.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:number", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:number", rc.UpdateRoom)
			rooms.DELETE("/:number", rc.DeleteRoom)
		}

		customers := authed.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.GET("/:id", cc.GetCustomer)
			customers.POST("", cc.CreateCustomer)
			customers.PUT("/:id", cc.UpdateCustomer)
			customers.PATCH("/:id/points", cc.AdjustPoints)
			customers.DELETE("/:id", cc.DeleteCustomer)
		}

		reservations := authed.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			// must come before /:id
			reservations.GET("/availability", resc.CheckAvailability)
			reservations.GET("/:id", resc.GetReservation)
			reservations.POST("", resc.CreateReservation)
			reservations.PUT("/:id", resc.ModifyReservation)
			reservations.POST("/:id/cancel", resc.CancelReservation)
		}

		authed.POST("/checkin", resc.CheckIn)
		authed.POST("/checkout", resc.CheckOut)

		transactions := authed.Group("/transactions")
		{
			transactions.GET("", tc.GetTransactions)
			transactions.GET("/:id", tc.GetTransaction)
			transactions.POST("", tc.CreateTransaction)
			transactions.DELETE("/:id", middleware.AdminMiddleware(), tc.DeleteTransaction)
		}

		reports := authed.Group("/reports")
		{
			reports.GET("/finance", repc.FinanceSummary)
			reports.GET("/finance/export", repc.ExportFinanceReport)
		}

		users := authed.Group("/users")
		users.Use(middleware.AdminMiddleware())
		{
			users.GET("", uc.GetUsers)
			users.POST("", uc.CreateUser)
			users.PUT("/:id/role", uc.UpdateUserRole)
			users.PUT("/:id/password", uc.ResetPassword)
			users.DELETE("/:id", uc.DeleteUser)
		}

		chat := authed.Group("/chat")
		{
			chat.POST("/:session", chc.SendMessage)
			chat.GET("/:session", chc.GetHistory)
			chat.DELETE("/:session", chc.ResetSession)
		}
	}

	return r
}
