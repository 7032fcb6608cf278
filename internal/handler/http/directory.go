package http

import (
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/channel-console/models"
)

// directory is the in-memory state of the fake backend. Deleting a user or a
// channel deletes its mappings.
type directory struct {
	mu sync.RWMutex

	nextID       int64
	users        map[int64]models.User
	channels     map[int64]models.Channel
	userChannels map[int64]models.UserChannel
}

func newDirectory() *directory {
	return &directory{
		users:        make(map[int64]models.User),
		channels:     make(map[int64]models.Channel),
		userChannels: make(map[int64]models.UserChannel),
	}
}

func (d *directory) newID() int64 {
	d.nextID++
	return d.nextID
}

// page applies skip and limit to ids sorted ascending.
func page(ids []int64, skip, limit int) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if skip >= len(ids) {
		return nil
	}
	ids = ids[skip:]
	if limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}

func containsFold(s *string, term string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), term)
}

// ── users ───────────────────────────────────────────────────────────────────

func (d *directory) listUsers(search string, skip, limit int) []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	ids := make([]int64, 0, len(d.users))
	for id, u := range d.users {
		if term == "" || containsFold(u.Name, term) || containsFold(u.Email, term) || containsFold(u.Phone, term) {
			ids = append(ids, id)
		}
	}

	out := []models.User{}
	for _, id := range page(ids, skip, limit) {
		out = append(out, d.users[id])
	}
	return out
}

func (d *directory) getUser(id int64) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return models.User{}, errUserNotFound
	}
	return u, nil
}

func (d *directory) saveUser(id int64, req models.UserCreate) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id != 0 {
		if _, ok := d.users[id]; !ok {
			return models.User{}, errUserNotFound
		}
	}
	if req.Email != nil {
		for otherID, other := range d.users {
			if otherID != id && other.Email != nil && strings.EqualFold(*other.Email, *req.Email) {
				return models.User{}, errEmailTaken
			}
		}
	}
	if id == 0 {
		id = d.newID()
	}

	u := models.User{ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone, Persona: req.Persona}
	d.users[id] = u
	return u, nil
}

func (d *directory) deleteUser(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[id]; !ok {
		return errUserNotFound
	}
	delete(d.users, id)
	for mid, m := range d.userChannels {
		if m.UserID == id {
			delete(d.userChannels, mid)
		}
	}
	return nil
}

// ── channels ────────────────────────────────────────────────────────────────

func (d *directory) listChannels(search string, skip, limit int) []models.Channel {
	d.mu.RLock()
	defer d.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	ids := make([]int64, 0, len(d.channels))
	for id, c := range d.channels {
		if term == "" || strings.Contains(strings.ToLower(c.Name), term) || strings.Contains(strings.ToLower(c.Type), term) {
			ids = append(ids, id)
		}
	}

	out := []models.Channel{}
	for _, id := range page(ids, skip, limit) {
		out = append(out, d.channels[id])
	}
	return out
}

func (d *directory) getChannel(id int64) (models.Channel, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.channels[id]
	if !ok {
		return models.Channel{}, errChannelNotFound
	}
	return c, nil
}

func (d *directory) saveChannel(id int64, req models.ChannelCreate) (models.Channel, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id == 0 {
		id = d.newID()
	} else if _, ok := d.channels[id]; !ok {
		return models.Channel{}, errChannelNotFound
	}

	c := models.Channel{ID: id, Name: req.Name, Type: req.Type, Config: req.Config}
	d.channels[id] = c
	return c, nil
}

func (d *directory) deleteChannel(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.channels[id]; !ok {
		return errChannelNotFound
	}
	delete(d.channels, id)
	for mid, m := range d.userChannels {
		if m.ChannelID == id {
			delete(d.userChannels, mid)
		}
	}
	return nil
}

// ── user-channel mappings ───────────────────────────────────────────────────

func (d *directory) listUserChannels(userID *int64, channelType string, skip, limit int) []models.UserChannel {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]int64, 0, len(d.userChannels))
	for id, m := range d.userChannels {
		if userID != nil && m.UserID != *userID {
			continue
		}
		if channelType != "" && !strings.EqualFold(d.channels[m.ChannelID].Type, channelType) {
			continue
		}
		ids = append(ids, id)
	}

	out := []models.UserChannel{}
	for _, id := range page(ids, skip, limit) {
		out = append(out, d.userChannels[id])
	}
	return out
}

func (d *directory) getUserChannel(id int64) (models.UserChannel, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, ok := d.userChannels[id]
	if !ok {
		return models.UserChannel{}, errUserChannelNotFound
	}
	return m, nil
}

func (d *directory) saveUserChannel(id int64, req models.UserChannelCreate) (models.UserChannel, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id != 0 {
		if _, ok := d.userChannels[id]; !ok {
			return models.UserChannel{}, errUserChannelNotFound
		}
	}
	if _, ok := d.users[req.UserID]; !ok {
		return models.UserChannel{}, errUserNotFound
	}
	if _, ok := d.channels[req.ChannelID]; !ok {
		return models.UserChannel{}, errChannelNotFound
	}
	for otherID, other := range d.userChannels {
		if otherID != id && other.UserID == req.UserID && other.ChannelID == req.ChannelID {
			return models.UserChannel{}, errMappingExists
		}
	}
	if id == 0 {
		id = d.newID()
	}

	m := models.UserChannel{
		ID:             id,
		UserID:         req.UserID,
		ChannelID:      req.ChannelID,
		ContactDetails: req.ContactDetails,
		IsPreferred:    req.IsPreferred,
	}
	d.userChannels[id] = m
	return m, nil
}

func (d *directory) deleteUserChannel(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.userChannels[id]; !ok {
		return errUserChannelNotFound
	}
	delete(d.userChannels, id)
	return nil
}
