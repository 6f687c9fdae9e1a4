// Package handler is the serverless entrypoint. Warm instances reuse the wired server.
package handler

import (
	"net/http"
	"sync"

	"voyage/config"
	"voyage/di"
	"voyage/shared/logger"
	voyageHTTP "voyage/transport/http"
)

var (
	server *voyageHTTP.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
