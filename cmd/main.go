package main

import (
	"log"
	"os"

	"github.com/Pragathi1123/eco-hive-smart/config"
	"github.com/Pragathi1123/eco-hive-smart/routes"
	"github.com/Pragathi1123/eco-hive-smart/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	r := routes.SetupRouter()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
