package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cloud-ru/unit-economics-go/internal/logger"
	"github.com/cloud-ru/unit-economics-go/internal/tools"
	"github.com/cloud-ru/unit-economics-go/pkg/response"
)

const maxBodyBytes = 1 << 16

// NewRouter создает HTTP-маршрутизатор поверх набора инструментов
func NewRouter(registry tools.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	h := &toolHandlers{registry: registry}
	r.Route("/tools", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/{name}", h.call)
	})

	return r
}

type toolHandlers struct {
	registry tools.Registry
}

func (h *toolHandlers) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, response.Success(http.StatusOK, h.registry.Names()))
}

func (h *toolHandlers) call(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	handler, ok := h.registry[name]
	if !ok {
		writeJSON(w, response.Error(http.StatusNotFound, "неизвестный инструмент: "+name))
		return
	}

	params := map[string]interface{}{}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, response.Error(http.StatusBadRequest, "некорректное тело запроса: "+err.Error()))
		return
	}

	result, err := handler(r.Context(), params)
	if err != nil {
		writeJSON(w, response.Error(http.StatusUnprocessableEntity, err.Error()))
		return
	}
	writeJSON(w, response.Success(http.StatusOK, result))
}

func writeJSON(w http.ResponseWriter, resp response.Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("не удалось записать ответ", zap.Error(err))
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
