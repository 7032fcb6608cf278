package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 100
	maxBodySize  = 1 << 20
)

// validationErrors collects 422 entries in the backend's format.
type validationErrors []models.ValidationError

func (v *validationErrors) add(msg, errType string, loc ...any) {
	*v = append(*v, models.ValidationError{Loc: loc, Msg: msg, Type: errType})
}

func (v validationErrors) write(w http.ResponseWriter) bool {
	if len(v) == 0 {
		return false
	}
	_, _ = utils.WriteDetail(w, []models.ValidationError(v), http.StatusUnprocessableEntity)
	return true
}

type listQuery struct {
	skip        int
	limit       int
	search      string
	userID      *int64
	channelType string
}

func parseListQuery(r *http.Request) (listQuery, validationErrors) {
	q := r.URL.Query()
	lq := listQuery{limit: defaultLimit, search: q.Get("search"), channelType: q.Get("channel_type")}
	var errs validationErrors

	intParam := func(name string, dst *int) {
		raw := q.Get(name)
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			errs.add("Input should be a valid non-negative integer", "int_parsing", "query", name)
			return
		}
		*dst = v
	}
	intParam("skip", &lq.skip)
	intParam("limit", &lq.limit)

	if raw := q.Get("user_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs.add("Input should be a valid integer", "int_parsing", "query", "user_id")
		} else {
			lq.userID = &v
		}
	}

	return lq, errs
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		validationErrors{{
			Loc:  []any{"path", "id"},
			Msg:  "Input should be a valid integer",
			Type: "int_parsing",
		}}.write(w)
		return 0, false
	}
	return id, true
}

// decodeBody reads a JSON body into v. Numbers inside free-form objects are
// kept as json.Number.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		_, _ = utils.WriteDetail(w, "Could not read request body", http.StatusBadRequest)
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(v); err != nil {
		validationErrors{{
			Loc:  []any{"body"},
			Msg:  "JSON decode error: " + err.Error(),
			Type: "json_invalid",
		}}.write(w)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errUserNotFound), errors.Is(err, errChannelNotFound), errors.Is(err, errUserChannelNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errEmailTaken), errors.Is(err, errMappingExists):
		status = http.StatusBadRequest
	default:
		logger.FromRequest(r).Error().Err(err).Msg("unexpected directory error")
	}
	_, _ = utils.WriteDetail(w, err.Error(), status)
}
