package main

import (
	"yatube/config"
	"yatube/models"
	"yatube/routes"
	"yatube/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		utils.Sugar.Fatalf("invalid configuration: %v", err)
	}

	db := config.InitDatabase(&models.User{}, &models.Group{}, &models.Post{}, &models.PageView{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
