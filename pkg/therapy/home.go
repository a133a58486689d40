// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

// PatientEvolution averages the caller's pain per week over the last evolutionDays.
func (s *Service) PatientEvolution(ctx context.Context, caller *types.CallerContext) (*PatientEvolution, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.PatientEvolution")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	events, err := s.storage.ListPainEvents(ctx, caller.UserID, s.now().AddDate(0, 0, -evolutionDays))
	if err != nil {
		return nil, httptypes.BadRequest(CodeEvolutionFailed, "failed to load pain evolution", err)
	}

	recent := events
	if len(recent) > recentPainEvents {
		recent = recent[:recentPainEvents]
	}

	return &PatientEvolution{Weeks: weeklyPain(events), Recent: recent}, nil
}

// PatientHome returns the caller's next appointment and pain of the last homePainDays.
func (s *Service) PatientHome(ctx context.Context, caller *types.CallerContext) (*PatientHome, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.PatientHome")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	now := s.now()

	var (
		next   []*types.AppointmentView
		events []*types.PainEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next, err = s.storage.ListAppointments(gctx, storage.AppointmentFilter{PatientID: caller.UserID, From: now, Limit: 1})
		return err
	})
	g.Go(func() (err error) {
		events, err = s.storage.ListPainEvents(gctx, caller.UserID, now.AddDate(0, 0, -homePainDays))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httptypes.BadRequest(CodeHomeFailed, "failed to load home", err)
	}

	home := &PatientHome{WeekPainEvents: len(events)}
	if len(next) > 0 {
		home.NextAppointment = next[0]
	}
	if avg := averagePain(events, 1); avg != nil {
		home.WeekAveragePain = *avg
	}

	return home, nil
}

// TherapistHome lists the caller's assigned patients with their pain of the last homePainDays
// and their next appointment with the caller.
func (s *Service) TherapistHome(ctx context.Context, caller *types.CallerContext) (*TherapistHome, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.TherapistHome")
	defer span.End()

	if err := identity.RequireTherapist(caller, s.logger); err != nil {
		return nil, err
	}

	assignments, err := s.storage.ListActiveAssignments(ctx, storage.AssignmentFilter{TherapistID: caller.UserID})
	if err != nil {
		return nil, httptypes.BadRequest(CodeHomeFailed, "failed to load assigned patients", err)
	}

	home := &TherapistHome{Patients: make([]*TherapistPatient, 0, len(assignments))}

	patientIDs := make([]string, 0, len(assignments))
	assigned := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if _, ok := assigned[a.PatientID]; ok {
			continue
		}
		assigned[a.PatientID] = struct{}{}
		patientIDs = append(patientIDs, a.PatientID)
	}

	if len(patientIDs) == 0 {
		return home, nil
	}

	now := s.now()

	var (
		profiles     []*types.ProfileWithRole
		appointments []*types.AppointmentView
		events       []*types.PainEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profiles, err = s.storage.ListProfiles(gctx, "", patientIDs...)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = s.storage.ListAppointments(gctx, storage.AppointmentFilter{TherapistID: caller.UserID, From: now})
		return err
	})
	g.Go(func() (err error) {
		events, err = s.storage.ListPainEventsByPatients(gctx, patientIDs, now.AddDate(0, 0, -homePainDays))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httptypes.BadRequest(CodeHomeFailed, "failed to load home", err)
	}

	next := make(map[string]time.Time, len(patientIDs))
	for _, a := range appointments {
		if _, ok := next[a.PatientID]; !ok {
			next[a.PatientID] = a.ScheduledAt
		}
	}

	pain := make(map[string][]*types.PainEvent, len(patientIDs))
	for _, e := range events {
		pain[e.PatientID] = append(pain[e.PatientID], e)
	}

	for _, p := range profiles {
		if _, ok := assigned[p.ID]; !ok {
			continue
		}

		row := &TherapistPatient{PatientID: p.ID, FullName: p.FullName, AveragePain: averagePain(pain[p.ID], 1)}
		if at, ok := next[p.ID]; ok {
			row.NextAppointment = &at
		}
		home.Patients = append(home.Patients, row)
	}

	return home, nil
}

// weekStart is the UTC Monday of the week holding t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
}

// weeklyPain groups events newest first into weeks, oldest week first.
func weeklyPain(events []*types.PainEvent) []*WeeklyPain {
	weeks := make([]*WeeklyPain, 0)
	byWeek := make(map[string][]*types.PainEvent)

	for i := len(events) - 1; i >= 0; i-- {
		key := weekStart(events[i].RecordedAt).Format(time.DateOnly)
		if _, ok := byWeek[key]; !ok {
			weeks = append(weeks, &WeeklyPain{WeekStart: key})
		}
		byWeek[key] = append(byWeek[key], events[i])
	}

	for _, w := range weeks {
		w.Events = len(byWeek[w.WeekStart])
		w.AverageIntensity = *averagePain(byWeek[w.WeekStart], 2)
	}

	return weeks
}

// averagePain is nil without events, otherwise rounded to the given decimals.
func averagePain(events []*types.PainEvent, decimals int) *float64 {
	if len(events) == 0 {
		return nil
	}

	total := 0
	for _, e := range events {
		total += e.Intensity
	}

	scale := math.Pow(10, float64(decimals))
	avg := math.Round(float64(total)/float64(len(events))*scale) / scale
	return &avg
}
