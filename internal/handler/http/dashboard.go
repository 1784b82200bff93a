package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/jwt"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

const (
	streamKeepalive    = 30 * time.Second
	streamSessionCheck = 5 * time.Second
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)

	// SSE
	GetStreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

// Subscriber hands out per-session event channels.
type Subscriber interface {
	Subscribe(username string) (chan sse.Event, func())
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	jwtService       jwt.Service
	hub              Subscriber
	sessionCheck     time.Duration
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, jwtService jwt.Service, hub Subscriber) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		jwtService:       jwtService,
		hub:              hub,
		sessionCheck:     streamSessionCheck,
	}
}

func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetStreamToken generates a short-lived token for SSE connections
func (h *dashboardHandlerImpl) GetStreamToken(w http.ResponseWriter, r *http.Request) {
	accessToken, _, err := jwtauth.FromContext(r.Context())
	if err != nil || accessToken == nil || accessToken.Subject() == "" || accessToken.JwtID() == "" {
		response.Unauthorized(w, "Invalid token")
		return
	}
	username := accessToken.Subject()

	token, expiresIn, err := h.jwtService.GenerateSSEToken(username, accessToken.JwtID())
	if err != nil {
		slog.Error("Failed to generate SSE token", "error", err)
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, dashboard.SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream pushes dashboard summaries to the browser. EventSource cannot set
// headers, so the short-lived token travels in the query string. The stream
// ends once the session that issued the token logs out.
func (h *dashboardHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	username, sessionID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(username)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"username\":%q}\n\n", username)

	// Give the new session a snapshot instead of waiting for the next push.
	if snapshot, err := h.dashboardService.GetDashboard(r.Context()); err != nil {
		slog.Warn("Initial dashboard snapshot failed", "username", username, "error", err)
	} else if data, err := json.Marshal(snapshot); err == nil {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", dashboard.EventSummaryUpdated, data)
	}
	flusher.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()
	sessionCheck := time.NewTicker(h.sessionCheck)
	defer sessionCheck.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-sessionCheck.C:
			if h.jwtService.IsTokenRevoked(sessionID) {
				fmt.Fprint(w, "event: session_revoked\ndata: {}\n\n")
				flusher.Flush()
				slog.Info("Dashboard stream closed after logout", "username", username)
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}
