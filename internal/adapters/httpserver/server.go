package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/enterprises/docs"
	"github.com/phenrril/enterprises/internal/adapters/spreadsheet"
	"github.com/phenrril/enterprises/internal/domain"
	"github.com/phenrril/enterprises/internal/usecase"
)

const (
	maxBodyBytes   = 1 << 20
	maxUploadBytes = 32 << 20
)

type Options struct {
	// AllowedOrigins vacío o con "*" permite cualquier origen.
	AllowedOrigins []string
	// Prefixes donde se montan las rutas de enterprises.
	Prefixes []string
	// OpenAPI publica GET /openapi/v1.json; solo en desarrollo.
	OpenAPI bool
}

type Server struct {
	mux         *http.ServeMux
	enterprises *usecase.EnterpriseUC
	registry    *prometheus.Registry
	metrics     *metrics
}

func New(uc *usecase.EnterpriseUC, opts Options) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{mux: http.NewServeMux(), enterprises: uc, registry: reg, metrics: newMetrics(reg)}

	prefixes := opts.Prefixes
	if len(prefixes) == 0 {
		prefixes = []string{"/enterprises", "/api/enterprises"}
	}
	s.routes(prefixes, opts.OpenAPI)

	// Recovery queda dentro de Logging y métricas para que un panic se
	// registre como 500.
	return Chain(s.mux,
		CORS(opts.AllowedOrigins),
		Recovery,
		s.metrics.Middleware,
		Logging,
		RequestID,
	)
}

func (s *Server) routes(prefixes []string, openAPI bool) {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if openAPI {
		s.mux.HandleFunc("GET /openapi/v1.json", s.handleOpenAPI)
	}

	for _, p := range prefixes {
		s.mux.HandleFunc("GET "+p, s.apiEnterprisesList)
		s.mux.HandleFunc("POST "+p, s.apiEnterprisesCreate)
		s.mux.HandleFunc("GET "+p+"/export", s.apiEnterprisesExport)
		s.mux.HandleFunc("POST "+p+"/import", s.apiEnterprisesImport)
		s.mux.HandleFunc("GET "+p+"/{id}", s.apiEnterpriseByID)
		s.mux.HandleFunc("PATCH "+p+"/{id}/toggle", s.apiEnterpriseToggle)
		s.mux.HandleFunc("DELETE "+p+"/{id}", s.apiEnterpriseDelete)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeOK(w, "ok", nil)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, docs.SwaggerInfo.ReadDoc())
}

// apiEnterprisesList godoc
// @Summary  List enterprises
// @Tags     enterprises
// @Produce  json
// @Success  200  {object}  envelope{data=[]enterpriseDTO}  "Fetched"
// @Failure  500  {object}  problem
// @Router   /enterprises [get]
func (s *Server) apiEnterprisesList(w http.ResponseWriter, r *http.Request) {
	list, err := s.enterprises.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "Fetched", toEnterpriseDTOs(list))
}

// apiEnterpriseByID godoc
// @Summary  Get an enterprise
// @Tags     enterprises
// @Produce  json
// @Param    id   path      string  true  "Enterprise ID"
// @Success  200  {object}  envelope{data=enterpriseDTO}  "Fetched"
// @Failure  404  {object}  problem  "Enterprise not found"
// @Router   /enterprises/{id} [get]
func (s *Server) apiEnterpriseByID(w http.ResponseWriter, r *http.Request) {
	e, err := s.enterprises.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "Fetched", toEnterpriseDTO(e))
}

// apiEnterprisesCreate godoc
// @Summary  Create an enterprise
// @Tags     enterprises
// @Accept   json
// @Produce  json
// @Param    body  body      usecase.CreateEnterpriseInput  true  "Enterprise"
// @Success  200   {object}  envelope{data=enterpriseDTO}  "Created"
// @Failure  400   {object}  problem
// @Router   /enterprises [post]
func (s *Server) apiEnterprisesCreate(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateEnterpriseInput
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeProblem(w, badRequest("Malformed request body: "+err.Error()))
		return
	}
	e, err := s.enterprises.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	log.Info().Str("id", e.ID).Str("request_id", RequestIDFrom(r.Context())).Msg("enterprise created")
	writeOK(w, "Created", toEnterpriseDTO(e))
}

// apiEnterpriseToggle godoc
// @Summary  Toggle the disabled flag
// @Tags     enterprises
// @Produce  json
// @Param    id   path      string  true  "Enterprise ID"
// @Success  200  {object}  envelope{data=enterpriseDTO}  "Disabled or Enabled"
// @Failure  404  {object}  problem  "Enterprise not found"
// @Router   /enterprises/{id}/toggle [patch]
func (s *Server) apiEnterpriseToggle(w http.ResponseWriter, r *http.Request) {
	e, err := s.enterprises.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	msg := "Enabled"
	if e.Disabled {
		msg = "Disabled"
	}
	writeOK(w, msg, toEnterpriseDTO(e))
}

// apiEnterpriseDelete godoc
// @Summary  Delete an enterprise
// @Tags     enterprises
// @Produce  json
// @Param    id   path      string  true  "Enterprise ID"
// @Success  200  {object}  envelope{data=string}  "Deleted"
// @Failure  404  {object}  problem  "Enterprise not found"
// @Router   /enterprises/{id} [delete]
func (s *Server) apiEnterpriseDelete(w http.ResponseWriter, r *http.Request) {
	id, err := s.enterprises.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeOK(w, "Deleted", id)
}

// apiEnterprisesExport godoc
// @Summary  Export enterprises as xlsx
// @Tags     enterprises
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200  {file}    file
// @Failure  500  {object}  problem
// @Router   /enterprises/export [get]
func (s *Server) apiEnterprisesExport(w http.ResponseWriter, r *http.Request) {
	list, err := s.enterprises.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=enterprises.xlsx")
	if err := spreadsheet.WriteEnterprises(w, list); err != nil {
		// los headers ya salieron; solo queda loguear
		log.Error().Err(err).Str("request_id", RequestIDFrom(r.Context())).Msg("export xlsx")
	}
}

// apiEnterprisesImport godoc
// @Summary  Import enterprises from xlsx
// @Tags     enterprises
// @Accept   multipart/form-data
// @Produce  json
// @Param    file  formData  file  true  "xlsx workbook"
// @Success  200   {object}  envelope{data=usecase.ImportResult}  "Imported"
// @Failure  400   {object}  problem
// @Router   /enterprises/import [post]
func (s *Server) apiEnterprisesImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeProblem(w, badRequest("Expected multipart form with a file field"))
		return
	}
	fh := r.MultipartForm.File["file"]
	if len(fh) == 0 {
		writeProblem(w, badRequest("Missing file"))
		return
	}
	f, err := fh[0].Open()
	if err != nil {
		writeProblem(w, badRequest("Unreadable file"))
		return
	}
	defer f.Close()

	rows, err := spreadsheet.ReadEnterprises(f)
	if err != nil {
		writeProblem(w, badRequest("Invalid spreadsheet: "+err.Error()))
		return
	}
	res, err := s.enterprises.Import(r.Context(), rows)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	log.Info().Int("created", res.Created).Int("failed", len(res.Failed)).Msg("enterprise import")
	writeOK(w, "Imported", res)
}

// writeError traduce errores de dominio a problem details; el resto es 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeProblem(w, validationProblem(verr.Fields))
	case errors.Is(err, domain.ErrInvalidBalance):
		writeProblem(w, badRequest("Invalid balance"))
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, notFound("Enterprise not found"))
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).
			Str("request_id", RequestIDFrom(r.Context())).Msg("unhandled error")
		writeProblem(w, internalError())
	}
}
