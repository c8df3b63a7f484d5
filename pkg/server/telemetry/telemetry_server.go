package telemetry

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
	"github.com/apexview/f1telemetry-service-go/pkg/session"
	processing "github.com/apexview/f1telemetry-service-go/pkg/telemetry"
)

func NewServer(opts ...Option) *Server {
	ret := &Server{l: log.Default().Named("api")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

type Option func(*Server)

func WithLoader(arg *session.Loader) Option {
	return func(srv *Server) {
		srv.loader = arg
	}
}

func WithProcessor(arg *processing.Processor) Option {
	return func(srv *Server) {
		srv.proc = arg
	}
}

func WithLogger(arg *log.Logger) Option {
	return func(srv *Server) {
		srv.l = arg
	}
}

// Server exposes the telemetry engine as JSON over HTTP. It holds no
// request state; sessions come from the loader's caches.
type Server struct {
	loader *session.Loader
	proc   *processing.Processor
	l      *log.Logger
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.Handle("GET /api/telemetry/session", s.wrap(s.handleSession))
	mux.Handle("GET /api/telemetry/lap", s.wrap(s.handleLap))
	mux.Handle("GET /api/telemetry/lap/meta", s.wrap(s.handleLapMeta))
	mux.Handle("GET /api/telemetry/compare", s.wrap(s.handleCompare))
	mux.Handle("GET /api/telemetry/speed", s.wrap(s.handleSpeed))
	mux.Handle("GET /api/telemetry/fastest-lap", s.wrap(s.handleFastestLap))
}

type lapResponse struct {
	LapMeta   *model.LapSummary          `json:"lap_meta"`
	Telemetry *model.NormalizedTelemetry `json:"telemetry"`
}

type comparisonResponse struct {
	SessionMeta *model.SessionMetadata `json:"session_meta"`
	model.Comparison
}

type fastestLapResponse struct {
	Driver     string `json:"driver"`
	FastestLap int    `json:"fastest_lap"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Metadata(sess))
}

func (s *Server) handleLap(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	driver, lap, ok := driverLapParams(w, r)
	if !ok {
		return
	}
	summary, telemetry, err := s.proc.LapTelemetry(sess, driver, lap)
	if err != nil {
		s.writeProcessingError(w, r, err)
		return
	}
	if summary == nil {
		writeError(w, http.StatusNotFound,
			"Lap "+strconv.Itoa(lap)+" not found for driver "+driver)
		return
	}
	if telemetry == nil {
		writeError(w, http.StatusNotFound,
			"Telemetry not available for driver "+driver+" lap "+strconv.Itoa(lap))
		return
	}
	writeJSON(w, http.StatusOK, lapResponse{LapMeta: summary, Telemetry: telemetry})
}

func (s *Server) handleLapMeta(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	driver, lap, ok := driverLapParams(w, r)
	if !ok {
		return
	}
	summary, err := s.proc.LapMetadata(sess, driver, lap)
	if err != nil {
		s.writeProcessingError(w, r, err)
		return
	}
	if summary == nil {
		writeError(w, http.StatusNotFound,
			"Lap "+strconv.Itoa(lap)+" not found for driver "+driver)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	driver1 := r.URL.Query().Get("driver1")
	driver2 := r.URL.Query().Get("driver2")
	lap, err := strconv.Atoi(r.URL.Query().Get("lap"))
	if driver1 == "" || driver2 == "" || err != nil {
		writeError(w, http.StatusBadRequest,
			"driver1, driver2 and lap query parameters are required")
		return
	}
	cmp, err := s.proc.CompareDrivers(sess, driver1, driver2, lap)
	if err != nil {
		s.writeProcessingError(w, r, err)
		return
	}
	if cmp.Lap1 == nil || cmp.Telemetry1 == nil {
		writeError(w, http.StatusNotFound,
			"Telemetry not available for driver "+driver1+" lap "+strconv.Itoa(lap))
		return
	}
	if cmp.Lap2 == nil || cmp.Telemetry2 == nil {
		writeError(w, http.StatusNotFound,
			"Telemetry not available for driver "+driver2+" lap "+strconv.Itoa(lap))
		return
	}
	writeJSON(w, http.StatusOK, comparisonResponse{
		SessionMeta: session.Metadata(sess),
		Comparison:  *cmp,
	})
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	driversParam := r.URL.Query().Get("drivers")
	if driversParam == "" {
		writeError(w, http.StatusBadRequest, "drivers query parameter is required")
		return
	}
	drivers := make([]string, 0)
	for _, d := range strings.Split(driversParam, ",") {
		if trimmed := strings.ToUpper(strings.TrimSpace(d)); trimmed != "" {
			drivers = append(drivers, trimmed)
		}
	}
	var lapNumber *int
	if lapParam := r.URL.Query().Get("lap"); lapParam != "" {
		lap, err := strconv.Atoi(lapParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "lap must be a number")
			return
		}
		lapNumber = &lap
	}
	mode := processing.SelectionMode(r.URL.Query().Get("lap_type"))
	if mode == "" {
		mode = processing.SelectFastest
	}
	result := s.proc.SpeedTraces(sess, drivers, lapNumber, mode)
	if len(result.Traces) == 0 {
		writeError(w, http.StatusNotFound, result.Error)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleFastestLap(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	driver := r.URL.Query().Get("driver")
	if driver == "" {
		writeError(w, http.StatusBadRequest, "driver query parameter is required")
		return
	}
	lap, found := s.proc.FastestLapNumber(sess, driver)
	if !found {
		writeError(w, http.StatusNotFound, "No laps found for driver "+driver)
		return
	}
	writeJSON(w, http.StatusOK, fastestLapResponse{Driver: driver, FastestLap: lap})
}

// loadSession resolves the year/gp/session query parameters into a
// loaded session, writing the error response itself when it cannot.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	query := r.URL.Query()
	year, err := strconv.Atoi(query.Get("year"))
	gp := query.Get("gp")
	sessionName := query.Get("session")
	if err != nil || gp == "" || sessionName == "" {
		writeError(w, http.StatusBadRequest,
			"year, gp and session query parameters are required")
		return nil, false
	}
	sess, err := s.loader.Load(year, gp, sessionName)
	if err != nil {
		s.l.Error("failed to load session",
			log.Int("year", year), log.String("gp", gp),
			log.String("session", sessionName), log.ErrorField(err))
		writeError(w, http.StatusBadGateway, "Failed to retrieve session data")
		return nil, false
	}
	return sess, true
}

// typed processing failures are server-side errors; they are never
// downgraded to an empty 404 result
func (s *Server) writeProcessingError(w http.ResponseWriter, r *http.Request, err error) {
	var metaErr *processing.MetadataExtractionError
	var procErr *processing.TelemetryProcessingError
	switch {
	case errors.As(err, &metaErr), errors.As(err, &procErr):
		s.l.Error("processing failed", log.ErrorField(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		s.l.Error("unexpected error", log.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

func driverLapParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	driver := r.URL.Query().Get("driver")
	lap, err := strconv.Atoi(r.URL.Query().Get("lap"))
	if driver == "" || err != nil {
		writeError(w, http.StatusBadRequest,
			"driver and lap query parameters are required")
		return "", 0, false
	}
	return driver, lap, true
}
