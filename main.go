package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Alok-CS-2022/import-export-site/app/cmd"
	"github.com/Alok-CS-2022/import-export-site/app/configs"
	"github.com/Alok-CS-2022/import-export-site/app/routes"
)

func main() {

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db)

	port := configs.LoadENV.Port
	if port == "" {
		port = ":8080"
	}

	server := http.Server{
		Addr:    port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
