package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/models"
)

func (h *Handler) listChannels(w http.ResponseWriter, r *http.Request) {
	q, errs := parseListQuery(r)
	if errs.write(w) {
		return
	}
	_, _ = utils.WriteJSON(w, h.directory.listChannels(q.search, q.skip, q.limit), http.StatusOK)
}

func (h *Handler) getChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.directory.getChannel(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, c, http.StatusOK)
}

func (h *Handler) createChannel(w http.ResponseWriter, r *http.Request) {
	h.saveChannel(w, r, 0, http.StatusCreated)
}

func (h *Handler) updateChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.saveChannel(w, r, id, http.StatusOK)
}

func (h *Handler) saveChannel(w http.ResponseWriter, r *http.Request, id int64, status int) {
	var req models.ChannelCreate
	if !decodeBody(w, r, &req) {
		return
	}

	var errs validationErrors
	if strings.TrimSpace(req.Name) == "" {
		errs.add("Field required", "missing", "body", "name")
	}
	if strings.TrimSpace(req.Type) == "" {
		errs.add("Field required", "missing", "body", "type")
	}
	if errs.write(w) {
		return
	}

	c, err := h.directory.saveChannel(id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, c, status)
}

func (h *Handler) deleteChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.directory.deleteChannel(id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
