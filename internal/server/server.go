package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/smb-finance-go/internal/config"
	"github.com/cloud-ru/smb-finance-go/internal/metrics"
	"github.com/cloud-ru/smb-finance-go/internal/tools"
)

// RequestIDHeader - заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes ограничивает тело запроса к инструменту
const maxBodyBytes = 16 << 20

type ctxKey struct{}

// Server обслуживает HTTP-вызовы расчетных инструментов
type Server struct {
	log   *logrus.Logger
	tools map[string]tools.Tool
	list  []tools.Tool
}

// NewServer регистрирует инструменты и возвращает сервер
func NewServer(cfg *config.Config, tracer trace.Tracer, log *logrus.Logger) *Server {
	list := tools.Registry(cfg, tracer)
	byName := make(map[string]tools.Tool, len(list))
	for _, t := range list {
		byName[t.Name] = t
	}
	return &Server{log: log, tools: byName, list: list}
}

// Router собирает маршруты сервера
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID, s.accessLog)

	r.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tools", s.listToolsHandler).Methods(http.MethodGet)
	api.HandleFunc("/tools/{name}", s.callToolHandler).Methods(http.MethodPost)

	return r
}

// RequestID возвращает идентификатор запроса из контекста
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		elapsed := time.Since(start)
		metrics.HTTPRequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(elapsed.Seconds())

		s.log.WithFields(logrus.Fields{
			"request_id":  RequestID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": elapsed.Milliseconds(),
		}).Info("request handled")
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tools": s.list})
}

func (s *Server) callToolHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	logger := s.log.WithFields(logrus.Fields{
		"request_id": RequestID(r.Context()),
		"tool":       name,
	})

	tool, ok := s.tools[name]
	if !ok {
		writeError(w, http.StatusNotFound, "неизвестный инструмент: "+name)
		return
	}

	params := map[string]interface{}{}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON: "+err.Error())
		return
	}

	result, err := tool.Handler(r.Context(), params)
	if err != nil {
		if tools.IsClientError(err) {
			logger.WithError(err).Warn("tool call rejected")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.WithError(err).Error("tool call failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Debug("tool call succeeded")
	writeJSON(w, http.StatusOK, map[string]interface{}{"tool": name, "result": result})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
