package http

import (
	"net/http"

	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/models"
)

func (h *Handler) listUserChannels(w http.ResponseWriter, r *http.Request) {
	q, errs := parseListQuery(r)
	if errs.write(w) {
		return
	}
	out := h.directory.listUserChannels(q.userID, q.channelType, q.skip, q.limit)
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (h *Handler) getUserChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.directory.getUserChannel(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, m, http.StatusOK)
}

func (h *Handler) createUserChannel(w http.ResponseWriter, r *http.Request) {
	h.saveUserChannel(w, r, 0, http.StatusCreated)
}

func (h *Handler) updateUserChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.saveUserChannel(w, r, id, http.StatusOK)
}

func (h *Handler) saveUserChannel(w http.ResponseWriter, r *http.Request, id int64, status int) {
	var req models.UserChannelCreate
	if !decodeBody(w, r, &req) {
		return
	}

	var errs validationErrors
	if req.UserID <= 0 {
		errs.add("Input should be greater than 0", "greater_than", "body", "user_id")
	}
	if req.ChannelID <= 0 {
		errs.add("Input should be greater than 0", "greater_than", "body", "channel_id")
	}
	if req.ContactDetails == nil {
		errs.add("Field required", "missing", "body", "contact_details")
	}
	if errs.write(w) {
		return
	}

	m, err := h.directory.saveUserChannel(id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, m, status)
}

func (h *Handler) deleteUserChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.directory.deleteUserChannel(id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
