package handlers

import "net/http"

// Health handles GET /health. Kept deliberately trivial so load balancers and
// probes never depend on the calculator domain being healthy.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
