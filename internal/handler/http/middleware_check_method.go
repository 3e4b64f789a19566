// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a registered route but the method
// does not. For the admin surface that leaks route existence to
// unauthenticated callers probing, say, PUT /api/files/ — so an unsupported
// method is answered with 404 instead, exactly as if the path did not exist.
// A method that IS registered for the matched path falls through to the
// router's normal ServeHTTP pipeline.
//
// Matching compares each registered pattern against the raw request path
// ([http.Request.URL.Path]) exactly; parameterised segments like
// /api/files/{id} are not expanded here.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		// hide the route from unsupported methods
		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
