package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jar0582/cpusched/config"
	"github.com/jar0582/cpusched/internal/api"
)

func main() {
	cfg, err := config.Load("./")
	if err != nil {
		log.Fatalln(err)
	}

	app := fiber.New()
	api.NewSchedulerHandler(cfg).Register(app)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
