package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-repair-pos/internal/handler"
	"go-repair-pos/internal/middleware"
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/repository"
	"go-repair-pos/internal/service"
	"go-repair-pos/internal/ws"
	"go-repair-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Service{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	)

	// 3. Seed default operator account
	seedDefaultOperator(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	customerRepo := repository.NewCustomerRepo(db)
	productRepo := repository.NewProductRepo(db)
	serviceRepo := repository.NewServiceRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, serviceRepo, wsHub)
	customerService := service.NewCustomerService(customerRepo)
	checkoutService := service.NewCheckoutService(productRepo, customerRepo, txRepo, db, wsHub)
	dashService := service.NewDashboardService(txRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(catalogService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	customerHandler := handler.NewCustomerHandler(customerService)
	txHandler := handler.NewTransactionHandler(checkoutService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Repair Shop POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product Routes
	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Service Routes
	protected.Get("/services", serviceHandler.GetServices)
	protected.Post("/services", serviceHandler.CreateService)
	protected.Get("/services/:id", serviceHandler.GetService)
	protected.Put("/services/:id", serviceHandler.UpdateService)
	protected.Delete("/services/:id", serviceHandler.DeleteService)

	// Customer Routes
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// Transaction Routes
	protected.Get("/transactions", txHandler.GetTransactions)
	protected.Post("/transactions", txHandler.CreateTransaction)
	protected.Get("/transactions/:id", txHandler.GetTransaction)
	protected.Put("/transactions/:id", txHandler.UpdateTransaction)

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/daily-report", dashHandler.GetDailyReport)

	// WebSocket Route for live stock/transaction updates
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaultOperator creates the default operator account if none exists
func seedDefaultOperator(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Shop Operator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash operator password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create operator account: %v", err)
	} else {
		log.Printf("✅ Operator account created: %s", email)
	}
}
