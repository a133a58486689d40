// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"math"
	"time"

	"github.com/fisioapp/clinic-service/internal/types"
)

// monthBounds returns the UTC start of the previous, current and next month of now.
func monthBounds(now time.Time) (previous, current, next time.Time) {
	now = now.UTC()
	current = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return current.AddDate(0, -1, 0), current, current.AddDate(0, 1, 0)
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// percentDelta is nil when there is no previous value, halves round up.
func percentDelta(current, previous int) *int {
	if previous == 0 {
		return nil
	}

	delta := int(math.Floor(float64(current-previous)/float64(previous)*100 + 0.5))
	return &delta
}

// aggregate builds the dashboard from appointments of the previous and current month.
// Rows of clinics outside the list are ignored.
func aggregate(now time.Time, clinics []*types.Clinic, profiles []*types.ProfileWithRole, appointments []*types.AppointmentView) *Dashboard {
	_, current, _ := monthBounds(now)

	dashboard := &Dashboard{Clinics: make([]*ClinicMetrics, 0, len(clinics))}
	byClinic := make(map[string]*ClinicMetrics, len(clinics))

	for _, c := range clinics {
		m := &ClinicMetrics{ClinicID: c.ID, ClinicName: c.Name, Active: c.Active}
		byClinic[c.ID] = m
		dashboard.Clinics = append(dashboard.Clinics, m)
	}

	for _, p := range profiles {
		m, ok := byClinic[p.ClinicID]
		if !ok || !p.Active {
			continue
		}

		switch p.Role {
		case types.RoleTherapist:
			m.Therapists++
		case types.RolePatient:
			m.Patients++
			dashboard.Totals.ActivePatients++
		}
	}

	for _, a := range appointments {
		m, ok := byClinic[a.ClinicID]
		if !ok {
			continue
		}

		if a.ScheduledAt.Before(current) {
			dashboard.Totals.AppointmentsPreviousMonth++
			continue
		}

		dashboard.Totals.AppointmentsThisMonth++
		m.MonthlyAppointments++
		if sameUTCDay(a.ScheduledAt, now) {
			m.AppointmentsToday++
		}
	}

	dashboard.Totals.MonthOverMonthPercent = percentDelta(
		dashboard.Totals.AppointmentsThisMonth,
		dashboard.Totals.AppointmentsPreviousMonth,
	)

	return dashboard
}
