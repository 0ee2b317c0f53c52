package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/view"
)

func addServerTiming(w http.ResponseWriter, name string, took time.Duration) {
	w.Header().Add("Server-Timing", fmt.Sprintf("%s;dur=%.1f", name, float64(took.Microseconds())/1000))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// isBadRequest reports whether err came from invalid user selections.
func isBadRequest(err error) bool {
	return errors.Is(err, view.ErrUnknownRegion) ||
		errors.Is(err, view.ErrInvalidTopN) ||
		errors.Is(err, view.ErrTooManyCompare) ||
		errors.Is(err, export.ErrUnknownOption)
}
