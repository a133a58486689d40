// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

const monthKey = "2006-01"

// Reports aggregates the clinic activity of the last trendMonths months.
func (s *Service) Reports(ctx context.Context, caller *types.CallerContext) (*Reports, error) {
	ctx, span := s.tracer.Start(ctx, "clinics.Service.Reports")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	now := s.now()
	_, _, next := monthBounds(now)
	scope := caller.AdminClinicScope()

	var (
		appointments []*types.AppointmentView
		assignments  []*types.PatientAssignment
		completions  int
		recent       []*types.AppointmentView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		appointments, err = s.storage.ListAppointments(
			gctx,
			storage.AppointmentFilter{ClinicID: scope, From: trendStart(now), To: next},
		)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = s.storage.ListActiveAssignments(gctx, storage.AssignmentFilter{ClinicID: scope})
		return err
	})
	g.Go(func() (err error) {
		completions, err = s.storage.CountCompletions(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.storage.ListAppointments(
			gctx,
			storage.AppointmentFilter{ClinicID: scope, Limit: recentActivity, Latest: true},
		)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httptypes.BadRequest(CodeReportsFailed, "failed to load reports", err)
	}

	reports := aggregateReports(now, appointments, assignments)
	reports.Completions = completions
	reports.Recent = recent

	return reports, nil
}

// MasterAgenda lists the next appointments of the admin's clinics from the start of today.
func (s *Service) MasterAgenda(ctx context.Context, caller *types.CallerContext) ([]*types.AppointmentView, error) {
	ctx, span := s.tracer.Start(ctx, "clinics.Service.MasterAgenda")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	appointments, err := s.storage.ListAppointments(
		ctx,
		storage.AppointmentFilter{ClinicID: caller.AdminClinicScope(), From: today, Limit: masterAgendaLimit},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodeAgendaFailed, "failed to load agenda", err)
	}

	return appointments, nil
}

// trendStart is the first day of the oldest month of the trend.
func trendStart(now time.Time) time.Time {
	_, current, _ := monthBounds(now)
	return current.AddDate(0, -(trendMonths - 1), 0)
}

// aggregateReports counts appointments per trend month, and per status for the current month.
// Active patients are the distinct patients of the active assignments.
func aggregateReports(now time.Time, appointments []*types.AppointmentView, assignments []*types.PatientAssignment) *Reports {
	previous, current, _ := monthBounds(now)

	reports := &Reports{Trend: make([]*MonthCount, 0, trendMonths)}

	months := make(map[string]*MonthCount, trendMonths)
	for m := trendStart(now); !m.After(current); m = m.AddDate(0, 1, 0) {
		c := &MonthCount{Month: m.Format(monthKey)}
		months[c.Month] = c
		reports.Trend = append(reports.Trend, c)
	}

	for _, a := range appointments {
		at := a.ScheduledAt.UTC()
		if c, ok := months[at.Format(monthKey)]; ok {
			c.Total++
		}

		switch {
		case !at.Before(current):
			reports.AppointmentsThisMonth++
			reports.Statuses.add(a.Status)
		case !at.Before(previous):
			reports.AppointmentsPreviousMonth++
		}
	}

	reports.MonthOverMonthPercent = percentDelta(reports.AppointmentsThisMonth, reports.AppointmentsPreviousMonth)

	patients := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if a.Active {
			patients[a.PatientID] = struct{}{}
		}
	}
	reports.ActivePatients = len(patients)

	return reports
}
