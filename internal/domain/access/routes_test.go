//go:build unit

package access_test

import (
	"testing"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		want access.Requirement
	}{
		{path: "/", want: access.Requirement{Public: true}},
		{path: "/rooms/detail/7?start=2025-01-01", want: access.Requirement{Public: true}},
		{path: "/activities/timeslots/3/", want: access.Requirement{Public: true}},
		{path: "/rooms/create", want: access.Requirement{AdminOnly: true}},
		{path: "/manual-check-in/anna@hotel.com/12", want: access.Requirement{AdminOnly: true}},
		{path: "/room-cleaning", want: access.Requirement{CleanerOnly: true, Module: uiconfig.ModuleRoomCleaning}},
		{path: "/check-in/12", want: access.Requirement{Module: uiconfig.ModuleDigitalCheckIn}},
		{path: "/my-room", want: access.Requirement{}},
		{path: "/rooms/detail", want: access.Requirement{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, access.Lookup(tt.path))
		})
	}
}

func TestEvaluate(t *testing.T) {
	off := func(uiconfig.Module) bool { return true }
	on := func(uiconfig.Module) bool { return false }
	cleaningReq := access.Requirement{CleanerOnly: true, Module: uiconfig.ModuleRoomCleaning}

	tests := []struct {
		name      string
		req       access.Requirement
		loggedIn  bool
		role      session.Role
		moduleOff func(uiconfig.Module) bool
		want      access.Decision
	}{
		{name: "public ignores login", req: access.Requirement{Public: true}, want: access.Allow()},
		{name: "login first", req: cleaningReq, moduleOff: off, want: access.Decision{RedirectTo: access.RedirectLogin, Reason: access.ReasonLogin}},
		{name: "module before role", req: cleaningReq, loggedIn: true, role: session.RoleGuest, moduleOff: off, want: access.Decision{RedirectTo: access.RedirectHome, Reason: access.ReasonModuleDisabled}},
		{name: "cleaner only", req: cleaningReq, loggedIn: true, role: session.RoleGuest, moduleOff: on, want: access.Decision{RedirectTo: access.RedirectHome, Reason: access.ReasonCleanerOnly}},
		{name: "admin may clean", req: cleaningReq, loggedIn: true, role: session.RoleAdmin, moduleOff: on, want: access.Allow()},
		{name: "admin only", req: access.Requirement{AdminOnly: true}, loggedIn: true, role: session.RoleCleaningStaff, want: access.Decision{RedirectTo: access.RedirectHome, Reason: access.ReasonAdminOnly}},
		{name: "nil module func skips module check", req: cleaningReq, loggedIn: true, role: session.RoleCleaningStaff, want: access.Allow()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.Evaluate(tt.req, tt.loggedIn, tt.role, tt.moduleOff))
		})
	}
}

func TestEvaluate_ModuleConsultedOnlyWhenDeclared(t *testing.T) {
	called := false
	access.Evaluate(access.Requirement{AdminOnly: true}, true, session.RoleAdmin, func(uiconfig.Module) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
