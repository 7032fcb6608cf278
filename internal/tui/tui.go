// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilServices = errors.New("tui: services are nil")

type TUI struct {
	services *service.Services
	cfg      config.UI
	logger   *logger.Logger
}

func New(services *service.Services, cfg config.UI, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	return &TUI{services: services, cfg: cfg, logger: logger}, nil
}

// Run shows the console until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting terminal ui")

	model := newAppModel(ctx, t.services, t.cfg)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
