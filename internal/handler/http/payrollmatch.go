package http

import (
	"net/http"

	"github.com/atlashr/workforce-backend-go/internal/domain/payrollmatch"
	"github.com/atlashr/workforce-backend-go/internal/handler/http/response"
)

type PayrollMatchHandler interface {
	Match(w http.ResponseWriter, r *http.Request)
}

type payrollMatchHandlerImpl struct {
	matchService payrollmatch.PayrollMatchService
}

func NewPayrollMatchHandler(matchService payrollmatch.PayrollMatchService) PayrollMatchHandler {
	return &payrollMatchHandlerImpl{
		matchService: matchService,
	}
}

// Match implements PayrollMatchHandler.
func (h *payrollMatchHandlerImpl) Match(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	filter := payrollmatch.MatchFilter{
		Month: r.URL.Query().Get("month"),
	}

	// Match status filter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	// Employee name / code search
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Get data from service
	results, err := h.matchService.Match(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
