// Package handler is the serverless entrypoint. Warm invocations reuse the wired app.
package handler

import (
	"encore/config"
	"encore/di"
	"encore/shared/logger"
	"encore/transport/http"
	netHTTP "net/http"
	"sync"
)

var (
	app     *http.HTTP
	appOnce sync.Once
)

func Handler(w netHTTP.ResponseWriter, r *netHTTP.Request) {
	appOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
