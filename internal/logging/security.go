// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup   = "sys_startup"
	eventSystemShutdown  = "sys_shutdown"
	eventAuthzFail       = "authz_fail"
	eventAuthzNotAdmin   = "authz_fail_not_admin"
	eventAuthzClinic     = "authz_fail_clinic_mismatch"
	eventAdminAction     = "admin_action"
	securityLogComponent = "clinic-service"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup), zap.String("component", securityLogComponent))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown), zap.String("component", securityLogComponent))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", eventAuthzFail+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzFailureNotAdmin(userID string) {
	s.l.Warn(
		"admin role required",
		zap.String("event", eventAuthzNotAdmin+":"+userID),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) AuthzFailureClinicMismatch(userID, clinicID string) {
	s.l.Warn(
		"clinic scope mismatch",
		zap.String("event", eventAuthzClinic+":"+userID+","+clinicID),
		zap.String("user_id", userID),
		zap.String("clinic_id", clinicID),
	)
}

func (s *SecurityLogger) AdminAction(actorID, action, target string) {
	s.l.Info(
		"admin action",
		zap.String("event", eventAdminAction+":"+action),
		zap.String("actor_id", actorID),
		zap.String("action", action),
		zap.String("target", target),
	)
}
