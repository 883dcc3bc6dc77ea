package main

import (
	"log"
	"os"
	"strings"
	"time"

	"bawarchi/internal/auth"
	"bawarchi/internal/catalog"
	"bawarchi/internal/chat"
	"bawarchi/internal/db"
	"bawarchi/internal/middleware"
	"bawarchi/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"SESSION_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// GEMINI_API_KEY is optional: without it the chat endpoint still
	// answers, with its fallback string.
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, chat will use the fallback response")
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	menuCatalog := catalog.Default()

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	orderService := order.NewService(orderRepo, menuCatalog)
	chatService := chat.NewService(chat.NewGeminiClient(), chatModels())

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(menuCatalog)
	orderHandler := order.NewHandler(orderService)
	chatHandler := chat.NewHandler(chatService)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	r.GET("/", landing)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// ───────────────────────── AUTHENTICATED ROUTES ─────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/menu", catalogHandler.List)
		authed.POST("/place_order", orderHandler.PlaceOrder)
		authed.GET("/orders", orderHandler.ListOrders)
		authed.POST("/chat", chatHandler.Chat)
	}

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}

// landing reports auth state so the frontend can route to the menu or
// the login page.
func landing(c *gin.Context) {
	token, err := c.Cookie(auth.SessionCookie)
	if err == nil {
		if _, username, err := auth.ValidateToken(token); err == nil {
			c.JSON(200, gin.H{
				"message":       "Welcome back to Pavan's Bawarchi, " + username + "!",
				"authenticated": true,
			})
			return
		}
	}
	c.JSON(200, gin.H{
		"message":       "Welcome to Pavan's Bawarchi",
		"authenticated": false,
	})
}

// chatModels reads the optional comma-separated GEMINI_MODELS override.
func chatModels() []string {
	raw := os.Getenv("GEMINI_MODELS")
	if raw == "" {
		return nil
	}
	var models []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}
