package server

import (
	"encoding/json"
	"net/http"

	"caesar/internal/caesar"
	"caesar/internal/ctxlog"
)

type encryptRequest struct {
	Message string `json:"message"`
	Key     int    `json:"key"`
}

type encryptResponse struct {
	Encrypted string `json:"encrypted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func encryptHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req encryptRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		writeJSON(w, r, http.StatusOK, encryptResponse{
			Encrypted: caesar.Encrypt(req.Message, req.Key),
		})
	})
}

func healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok\n")); err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to write response", "error", err)
		}
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}
