package httpkit

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Param returns a path parameter registered on the route pattern
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// QueryInt reads an int query param or returns def when absent or invalid
func QueryInt(r *http.Request, name string, def int) int {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// QueryBool reads a bool query param or returns def when absent or invalid
func QueryBool(r *http.Request, name string, def bool) bool {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// QueryString reads a trimmed string query param or returns def when absent
func QueryString(r *http.Request, name, def string) string {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def
	}
	return s
}

// QueryFloat reads a float query param or returns def when absent or invalid
func QueryFloat(r *http.Request, name string, def float64) float64 {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
