// Package access holds the route table of the browser app and the rules that
// decide whether a session may open a route.
package access

import (
	"strings"

	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"
)

const (
	RedirectLogin = "/login"
	RedirectHome  = "/"
)

// Reasons reported with a denial.
const (
	ReasonLogin          = "not-logged-in"
	ReasonModuleDisabled = "module-disabled"
	ReasonAdminOnly      = "admin-only"
	ReasonCleanerOnly    = "cleaner-only"
)

// Requirement is what a route demands of the caller.
type Requirement struct {
	Public      bool
	AdminOnly   bool
	CleanerOnly bool
	Module      uiconfig.Module
}

type route struct {
	pattern []string
	req     Requirement
}

func r(pattern string, req Requirement) route {
	return route{pattern: segments(pattern), req: req}
}

var (
	public      = Requirement{Public: true}
	adminOnly   = Requirement{AdminOnly: true}
	cleaning    = Requirement{CleanerOnly: true, Module: uiconfig.ModuleRoomCleaning}
	checkIn     = Requirement{Module: uiconfig.ModuleDigitalCheckIn}
	loginNeeded = Requirement{}
)

var routes = []route{
	r("/", public),
	r("/login", public),
	r("/signup", public),
	r("/rooms", public),
	r("/rooms/detail/:id", public),
	r("/activities", public),
	r("/activities/timeslots/:id", public),
	r("/activities/detail/:id", public),

	r("/rooms/create", adminOnly),
	r("/rooms/edit/:id", adminOnly),
	r("/activities/create", adminOnly),
	r("/activities/edit/:id", adminOnly),
	r("/ui-config", adminOnly),
	r("/manual-check-in/:email/:id", adminOnly),

	r("/room-cleaning", cleaning),
	r("/check-in/:id", checkIn),
}

// Lookup returns the requirement of path. Unknown paths need a login.
func Lookup(path string) Requirement {
	segs := segments(path)
	for _, rt := range routes {
		if match(rt.pattern, segs) {
			return rt.req
		}
	}
	return loginNeeded
}

func segments(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func deny(to, reason string) Decision {
	return Decision{RedirectTo: to, Reason: reason}
}

// Evaluate applies the rules in order: login, module, admin, cleaner.
// moduleOff reports whether the route's module is switched off; it is only
// consulted for routes that declare one.
func Evaluate(req Requirement, loggedIn bool, role session.Role, moduleOff func(uiconfig.Module) bool) Decision {
	if req.Public {
		return Allow()
	}
	if !loggedIn {
		return deny(RedirectLogin, ReasonLogin)
	}
	if req.Module != "" && moduleOff != nil && moduleOff(req.Module) {
		return deny(RedirectHome, ReasonModuleDisabled)
	}
	if req.AdminOnly && !role.IsAdmin() {
		return deny(RedirectHome, ReasonAdminOnly)
	}
	if req.CleanerOnly && !role.IsCleaner() {
		return deny(RedirectHome, ReasonCleanerOnly)
	}
	return Allow()
}
