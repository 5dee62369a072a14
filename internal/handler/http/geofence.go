package http

import (
	"encoding/json"
	"net/http"

	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
	"github.com/atlashr/workforce-backend-go/internal/handler/http/response"
)

type GeofenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	areaService geofence.AreaService
}

func NewGeofenceHandler(areaService geofence.AreaService) GeofenceHandler {
	return &geofenceHandlerImpl{
		areaService: areaService,
	}
}

// Create implements GeofenceHandler.
func (h *geofenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.CreateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.areaService.CreateArea(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Geofence area created successfully", result)
}

// List implements GeofenceHandler.
func (h *geofenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.areaService.ListAreas(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
