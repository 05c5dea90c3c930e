// Copyright 2025 James Ross
package obs

import (
	"fmt"
	"net/http"

	"github.com/jamesross/textdedup/internal/config"
	"github.com/gorilla/mux"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartHTTPServer exposes /metrics and /healthz for a running pipeline
// driver so an operator can scrape progress of a long dedup batch.
func StartHTTPServer(cfg *config.Config) *http.Server {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Observability.MetricsPort), Handler: r}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
