package http

import (
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/network"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NetworkHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	DeviceLogs(w http.ResponseWriter, r *http.Request)
}

type networkHandlerImpl struct {
	networkService network.NetworkService
}

func NewNetworkHandler(networkService network.NetworkService) NetworkHandler {
	return &networkHandlerImpl{networkService: networkService}
}

func (h *networkHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.networkService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}

func (h *networkHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	h.writeLogs(w, r, queryParam(r, "device_id"))
}

func (h *networkHandlerImpl) DeviceLogs(w http.ResponseWriter, r *http.Request) {
	h.writeLogs(w, r, chi.URLParam(r, "deviceID"))
}

func (h *networkHandlerImpl) writeLogs(w http.ResponseWriter, r *http.Request, deviceID string) {
	logs, err := h.networkService.Logs(r.Context(), deviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, logs, &response.Meta{TotalItems: int64(len(logs))})
}
