package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"merobazar-backend/controllers"
	"merobazar-backend/middleware"
	"merobazar-backend/models"
	"merobazar-backend/repository"
	"merobazar-backend/token"
)

// Setup configures and returns the gin engine.
func Setup(ctrl *controllers.Controller, maker *token.Maker, users repository.UserRepository, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	// Backstop for anything a handler did not turn into a response itself.
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	authenticated := middleware.Authenticate(maker, users)

	api := r.Group("/api")
	{
		api.GET("/health", ctrl.HealthCheck)

		api.POST("/register", ctrl.Register)
		api.POST("/login", ctrl.Login)

		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:id", ctrl.GetProduct)
		api.GET("/categories", ctrl.GetCategories)
		api.GET("/categories/:id", ctrl.GetCategory)
		api.GET("/reviews/product/:productId", ctrl.GetProductReviews)
	}

	user := api.Group("", authenticated)
	{
		user.GET("/profile", ctrl.Profile)
		user.GET("/users/:id", ctrl.GetUser)
		user.PATCH("/users/:id", ctrl.UpdateUser)

		user.POST("/cart", ctrl.AddToCart)
		user.GET("/cart", ctrl.GetCart)
		user.PATCH("/cart/:id", ctrl.UpdateCartItem)
		user.DELETE("/cart/:id", ctrl.RemoveCartItem)
		user.DELETE("/cart", ctrl.ClearCart)

		user.POST("/orders", ctrl.CreateOrder)
		user.GET("/orders", ctrl.GetMyOrders)
		user.GET("/orders/:id", ctrl.GetOrder)
		user.DELETE("/orders/:id", ctrl.DeleteOrder)

		user.POST("/favourites/:productId", ctrl.AddFavourite)
		user.DELETE("/favourites/:productId", ctrl.RemoveFavourite)
		user.GET("/favourites", ctrl.GetFavourites)
		user.GET("/favourites/check/:productId", ctrl.CheckFavourite)

		user.POST("/reviews", ctrl.CreateReview)
		user.GET("/reviews/mine", ctrl.GetMyReviews)
		user.PATCH("/reviews/:id", ctrl.UpdateReview)
		user.DELETE("/reviews/:id", ctrl.DeleteReview)
	}

	admin := api.Group("/admin", authenticated, middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		admin.GET("/users", ctrl.GetUsers)
		admin.DELETE("/users/:id", ctrl.DeleteUser)

		admin.POST("/products", ctrl.CreateProduct)
		admin.PATCH("/products/:id", ctrl.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.DeleteProduct)

		admin.POST("/categories", ctrl.CreateCategory)
		admin.PATCH("/categories/:id", ctrl.UpdateCategory)
		admin.DELETE("/categories/:id", ctrl.DeleteCategory)

		admin.GET("/cart", ctrl.GetAllCarts)
		admin.GET("/orders", ctrl.GetAllOrders)
		admin.PATCH("/orders/:id/status", ctrl.UpdateOrderStatus)
		admin.GET("/favourites", ctrl.GetAllFavourites)
		admin.GET("/reviews", ctrl.GetAllReviews)
		admin.GET("/stats", ctrl.GetStats)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
