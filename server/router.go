package main

import (
	"encoding/json"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"acpc-thunderdome/server/acpc"
	"acpc-thunderdome/server/agent"
	"acpc-thunderdome/server/store"
)

const maxBody = 64 << 10

// Router serves the inspector API. db may be nil, in which case the archive
// endpoints answer 503.
func Router(db *store.DB, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	// Health
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"ok": true, "archive": db != nil}
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				body["ok"] = false
				body["archive_error"] = err.Error()
			}
		}
		writeJSON(w, body)
	})

	r.Post("/api/parse", func(w http.ResponseWriter, r *http.Request) {
		msg, err := readMessage(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m, err := acpc.Parse(msg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]any{
			"state":       m,
			"observation": agent.BuildObservation(m),
		})
	})

	r.Get("/api/hands/{hand}", func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "archive disabled", http.StatusServiceUnavailable)
			return
		}
		hand, err := strconv.Atoi(chi.URLParam(r, "hand"))
		if err != nil {
			http.Error(w, "bad hand number", http.StatusBadRequest)
			return
		}
		rows, err := db.HandStates(r.Context(), hand)
		if err != nil {
			log.Printf("hand %d: %v", hand, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(rows) == 0 {
			http.Error(w, "no states for hand", http.StatusNotFound)
			return
		}
		writeJSON(w, rows)
	})

	return r
}

// readMessage accepts {"message": "..."} JSON or the raw line as text.
func readMessage(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return "", err
	}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var req struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return "", err
		}
		return strings.TrimSpace(req.Message), nil
	}
	return strings.TrimSpace(string(body)), nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
