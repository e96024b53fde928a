package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"

	"merobazar-backend/config"
	"merobazar-backend/controllers"
	"merobazar-backend/repository"
	"merobazar-backend/routes"
	"merobazar-backend/service"
	"merobazar-backend/token"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	db := client.Database("merobazar")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("❌ Failed to create indexes: %v", err)
	}
	cancel()

	maker, err := token.NewMaker(cfg.TokenSecretKey)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("❌ Failed to initialise Cloudinary: %v", err)
		}
	} else {
		log.Println("⚠️  CLOUDINARY_URL not set, product image upload disabled")
	}

	users := repository.NewMongoUsers(db)
	products := repository.NewMongoProducts(db)
	categories := repository.NewMongoCategories(db)
	carts := repository.NewMongoCarts(db)
	orders := repository.NewMongoOrders(db)
	favourites := repository.NewMongoFavourites(db)
	reviews := repository.NewMongoReviews(db)

	ctrl := &controllers.Controller{
		Auth:       service.NewAuthService(users, maker),
		Users:      service.NewUserService(users),
		Products:   service.NewProductService(products),
		Categories: service.NewCategoryService(categories),
		Carts:      service.NewCartService(carts, products),
		Orders:     service.NewOrderService(orders),
		Favourites: service.NewFavouriteService(favourites),
		Reviews:    service.NewReviewService(reviews, orders),
		Stats:      service.NewStatsService(users, products, orders),
		Cld:        cld,
		DB:         db,
	}

	r := routes.Setup(ctrl, maker, users, cfg.Env)

	fmt.Println("🚀 MeroBazar backend starting...")
	fmt.Printf("🌐 Server running on: http://localhost:%s\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
