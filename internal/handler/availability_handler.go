package handler

import "net/http"

// GetAvailability lists each treatment with the slots still open on the
// requested date. The date is whatever key the client sends; no format
// checking happens here or below.
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	options, err := h.availability.Available(r.Context(), date)
	if err != nil {
		h.storeError(w, "compute availability", err)
		return
	}
	h.respond(w, http.StatusOK, options)
}

type treatmentResponse struct {
	Name string `json:"name"`
}

// GetTreatments is the name-only catalog projection the booking form uses
// to populate its specialty dropdown.
func (h *Handler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	names, err := h.treatments.ListTreatmentNames(r.Context())
	if err != nil {
		h.storeError(w, "list treatments", err)
		return
	}
	out := make([]treatmentResponse, 0, len(names))
	for _, n := range names {
		out = append(out, treatmentResponse{Name: n})
	}
	h.respond(w, http.StatusOK, out)
}
