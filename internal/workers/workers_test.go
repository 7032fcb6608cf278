// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/mock"
	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingWorker appends its id to a shared slice on Run and Stop.
type recordingWorker struct {
	id     int
	events *[]string
}

func (w *recordingWorker) Run()  { *w.events = append(*w.events, "run", string(rune('0'+w.id))) }
func (w *recordingWorker) Stop() { *w.events = append(*w.events, "stop", string(rune('0'+w.id))) }

func TestWorkers_RunInOrderStopInReverse(t *testing.T) {
	var events []string
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: 1, events: &events},
		&recordingWorker{id: 2, events: &events},
	}}

	ws.Run()
	ws.Stop()

	assert.Equal(t, []string{"run", "1", "run", "2", "stop", "2", "stop", "1"}, events)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() {
		ws.Run()
		ws.Stop()
	})
}

func TestNewWorkers(t *testing.T) {
	api := mock.NewMockAPIAdapter(gomock.NewController(t))
	services := service.NewServices(api, nil, logger.Nop())

	ws, err := NewWorkers(config.Default().Workers, services, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, ws.workers, 1)

	_, err = NewWorkers(config.Workers{JournalRetention: 0, PruneSchedule: "@every 1h"}, services, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidRetention)
}
