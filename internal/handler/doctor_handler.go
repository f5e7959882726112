package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

type createDoctorRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
}

func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req createDoctorRequest
	if !h.decode(w, r, &req) {
		return
	}

	d := &model.Doctor{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
	}
	if err := h.doctors.CreateDoctor(r.Context(), d); err != nil {
		h.storeError(w, "create doctor", err)
		return
	}
	h.respond(w, http.StatusOK, createAck{Acknowledged: true, ID: d.ID})
}

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctors.ListDoctors(r.Context())
	if err != nil {
		h.storeError(w, "list doctors", err)
		return
	}
	if doctors == nil {
		doctors = []model.Doctor{}
	}
	h.respond(w, http.StatusOK, doctors)
}

func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.doctors.DeleteDoctor(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respond(w, http.StatusNotFound, messageResponse{Message: "doctor not found"})
			return
		}
		h.storeError(w, "delete doctor", err)
		return
	}
	h.respond(w, http.StatusOK, createAck{Acknowledged: true})
}
