package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathfinder/server"
)

type Server struct {
	router      *way.Router
	SolveServer *server.SolveServer
}

func main() {
	Server := Server{
		SolveServer: server.NewSolveServer(),
	}
	go Server.SolveServer.Loop()
	Server.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, Server.router))
}
