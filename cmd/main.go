package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/config"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/controllers"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/routes"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/services"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/utils"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("configuration error")
	}

	ctx := context.Background()
	db, err := config.InitDB(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database init failed")
	}

	// Email and image uploads are optional: without AWS config the service
	// runs with those features disabled.
	var mailer *utils.Mailer
	if m, err := utils.NewMailer(ctx, cfg.AWSRegion, cfg.EmailFrom); err != nil {
		logrus.WithError(err).Warn("email disabled")
	} else {
		mailer = m
	}
	var uploader *utils.ImageUploader
	if u, err := utils.NewImageUploader(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3BaseURL); err != nil {
		logrus.WithError(err).Warn("profile picture uploads disabled")
	} else {
		uploader = u
	}

	secret := []byte(cfg.JWTSecret)

	foodSvc := services.NewFoodService(db, services.NewOpenFoodFactsService(cfg.OFFBaseURL))
	mealSvc := services.NewMealService(db, foodSvc)
	authSvc := services.NewAuthService(db, mailer, secret)
	userSvc := services.NewUserService(db, uploader)
	goalSvc := services.NewGoalService(db, mealSvc)
	feedbackSvc := services.NewFeedbackService(db, mailer, cfg.SupportEmail)
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		User:     controllers.NewUserController(userSvc),
		Food:     controllers.NewFoodController(foodSvc),
		Meal:     controllers.NewMealController(mealSvc, hub),
		Goal:     controllers.NewGoalController(goalSvc),
		Feedback: controllers.NewFeedbackController(feedbackSvc),
		Realtime: controllers.NewRealtimeController(hub),
	}, secret)

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
