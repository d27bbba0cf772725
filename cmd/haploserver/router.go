package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/interpose/middleware"
	"github.com/justinas/alice"
)

func router(config *Global) http.Handler {
	router := mux.NewRouter()
	GET := router.Methods("GET", "HEAD").Subrouter()

	h := handler{Global: config, router: router}

	GET.HandleFunc("/", h.Index).Name("index")
	GET.HandleFunc("/map", h.SitesMap).Name("map")
	GET.HandleFunc("/bin/{lineage:(?:y|mt)}/{bin_index}", h.BinDetail).Name("bin")
	GET.HandleFunc("/pie/{lineage:(?:y|mt)}/{bin_index}.png", h.PieChart).Name("pie")
	GET.HandleFunc("/api/tables/{lineage:(?:y|mt)}", h.TableJSON)
	GET.HandleFunc("/api/sites", h.SitesJSON)

	standard := alice.New(
		// Log all requests to STDOUT
		middleware.GorillaLog(),
	)

	return standard.Then(router)
}
