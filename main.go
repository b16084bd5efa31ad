package main

import (
	"log"

	"github.com/cs232s20/plants-backend/garden"
)

const version = "1.0.0"

func main() {

	settings, err := garden.LoadSettings("./serverSettings.yml")
	if err != nil {
		log.Fatalln(err)
	}

	controller, err := garden.NewController(settings)
	if err != nil {
		log.Fatalln(err)
	}
	defer controller.Close()

	server := garden.NewServer(version, controller)
	router := garden.NewRouter(server)

	log.Println("plants backend listening on", settings.ListenAddress)
	if err := router.Run(settings.ListenAddress); err != nil {
		log.Fatalln(err)
	}
}
