package httpx

import "net/http"

// healthHandler reports process liveness for load balancer probes.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
