package http

import (
	"net/http"
	"net/mail"

	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q, errs := parseListQuery(r)
	if errs.write(w) {
		return
	}
	_, _ = utils.WriteJSON(w, h.directory.listUsers(q.search, q.skip, q.limit), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.directory.getUser(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, u, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, 0, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.saveUser(w, r, id, http.StatusOK)
}

func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request, id int64, status int) {
	var req models.UserCreate
	if !decodeBody(w, r, &req) {
		return
	}

	var errs validationErrors
	if req.Email != nil {
		if addr, err := mail.ParseAddress(*req.Email); err != nil || addr.Address != *req.Email {
			errs.add("value is not a valid email address", "value_error", "body", "email")
		}
	}
	if errs.write(w) {
		return
	}

	u, err := h.directory.saveUser(id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, u, status)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.directory.deleteUser(id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
