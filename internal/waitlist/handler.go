package waitlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/titans986/waiting-list-site/internal/logging"
	"github.com/titans986/waiting-list-site/internal/models"
)

// RegisterPath is where the registration endpoint is mounted.
const RegisterPath = "/api/register"

// writeJSON writes v as the whole response body with the given status code,
// without the trailing newline json.Encoder would add.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// Handler serves the registration endpoint.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register accepts POST only. The body is decoded leniently: a missing or
// malformed email is recorded as empty and the response is still 200.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowed(w, r)
		return
	}

	logger := logging.FromContext(r.Context())

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.WithError(err).Debug("register: ignoring undecodable body")
	}

	if err := h.store.Record(r.Context(), req.Email); err != nil {
		logger.WithError(err).Error("register: record signup")
	}

	writeJSON(w, http.StatusOK, models.RegisterResponse{Message: models.RegisteredMessage})
}

// MethodNotAllowed answers 405 with "Allow: POST" and a plain-text body
// naming the rejected method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	fmt.Fprintf(w, "Method %s Not Allowed", r.Method)
}
