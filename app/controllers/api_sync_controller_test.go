package controllers

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/DennisWallner/HostDesk/internal/pkg/controlpanel"
)

func TestClassifySyncError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "local record missing",
			err:        &controlpanel.NotFoundError{Kind: "hosting", ID: 3},
			wantStatus: fiber.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "mapping missing",
			err:        &controlpanel.MappingNotFoundError{ControlPanelID: 1, LocalPlanType: "hosting", LocalPlanID: 5},
			wantStatus: fiber.StatusUnprocessableEntity,
			wantCode:   "mapping_not_found",
		},
		{
			name:       "panel misconfigured",
			err:        &controlpanel.ConfigError{Reason: "missing api key"},
			wantStatus: fiber.StatusUnprocessableEntity,
			wantCode:   "config_error",
		},
		{
			name:       "remote conflict",
			err:        &controlpanel.RemoteError{Op: "create website", Status: 409},
			wantStatus: fiber.StatusConflict,
			wantCode:   "remote_conflict",
		},
		{
			name:       "remote timeout",
			err:        &controlpanel.RemoteError{Op: "list subscriptions", Timeout: true},
			wantStatus: fiber.StatusBadGateway,
			wantCode:   "remote_unavailable",
		},
		{
			name:       "unclassified failure",
			err:        errors.New("boom"),
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "sync_failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := classifySyncError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}
