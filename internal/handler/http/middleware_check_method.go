// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with the backend's {"detail": "Method Not Allowed"} body and an Allow
// header listing the methods the matched route supports.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		for _, method := range []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		} {
			if router.Match(rctx, method, r.URL.Path) {
				w.Header().Add("Allow", method)
			}
			rctx.Reset()
		}

		_, _ = utils.WriteDetail(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteDetail(w, "Not Found", http.StatusNotFound)
}
