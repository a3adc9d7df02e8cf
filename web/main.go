package main

import (
	"flag"
	"log"
	"os"

	"github.com/tyler-conrad/ray-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Ray Tracer Web Server")
	log.Printf("Fetch http://localhost:%d/render to render an image", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
