package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/phenrril/enterprises/internal/domain"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type problem struct {
	Type   string              `json:"type,omitempty"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func badRequest(detail string) problem {
	return problem{Type: "https://tools.ietf.org/html/rfc9110#section-15.5.1", Title: "Bad Request", Status: http.StatusBadRequest, Detail: detail}
}

func validationProblem(fields map[string][]string) problem {
	return problem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.5.1",
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: fields,
	}
}

func notFound(detail string) problem {
	return problem{Type: "https://tools.ietf.org/html/rfc9110#section-15.5.5", Title: "Not Found", Status: http.StatusNotFound, Detail: detail}
}

func internalError() problem {
	return problem{Type: "https://tools.ietf.org/html/rfc9110#section-15.6.1", Title: "Internal Server Error", Status: http.StatusInternalServerError, Detail: "An unexpected error occurred"}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Status: "ok", Message: message, Data: data})
}

func writeProblem(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// enterpriseDTO es la forma en el cable: snake_case y balance como número
// con dos decimales fijos.
type enterpriseDTO struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Balance    json.Number   `json:"balance"`
	Verified   bool          `json:"verified"`
	Address    string        `json:"address"`
	TaxNumber  int64         `json:"tax_number"`
	TaxAddress taxAddressDTO `json:"tax_address"`
	CreatedAt  time.Time     `json:"created_at"`
	Disabled   bool          `json:"disabled"`
}

type taxAddressDTO struct {
	Province string `json:"province"`
	District string `json:"district"`
}

func toEnterpriseDTO(e *domain.Enterprise) enterpriseDTO {
	return enterpriseDTO{
		ID:        e.ID,
		Title:     e.Title,
		Phone:     e.Phone,
		Email:     e.Email,
		Balance:   json.Number(e.Balance.StringFixed(2)),
		Verified:  e.Verified,
		Address:   e.Address,
		TaxNumber: e.TaxNumber,
		TaxAddress: taxAddressDTO{
			Province: e.TaxAddress.Province,
			District: e.TaxAddress.District,
		},
		CreatedAt: e.CreatedAt.UTC(),
		Disabled:  e.Disabled,
	}
}

func toEnterpriseDTOs(list []domain.Enterprise) []enterpriseDTO {
	out := make([]enterpriseDTO, 0, len(list))
	for i := range list {
		out = append(out, toEnterpriseDTO(&list[i]))
	}
	return out
}
