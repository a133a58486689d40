// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"github.com/fisioapp/clinic-service/internal/types"
)

const (
	CodeCreateFailed    = "CLINIC_CREATE_FAILED"
	CodeInvalidClinicID = "INVALID_CLINIC_ID"
	CodeLookupFailed    = "CLINIC_LOOKUP_FAILED"
	CodeNotFound        = "CLINIC_NOT_FOUND"
	CodeUpdateFailed    = "CLINIC_UPDATE_FAILED"
	CodeListFailed      = "CLINIC_LIST_FAILED"
	CodeDashboardFailed = "DASHBOARD_FAILED"
	CodeReportsFailed   = "REPORTS_FAILED"
	CodeAgendaFailed    = "MASTER_AGENDA_FAILED"
)

const (
	trendMonths       = 6
	recentActivity    = 8
	masterAgendaLimit = 50
)

type CreateClinicRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Address  string `json:"address" validate:"required,min=5"`
	Phone    string `json:"phone" validate:"required,min=7"`
	Timezone string `json:"timezone" validate:"omitempty,min=3"`
	Active   *bool  `json:"active"`
}

type UpdateClinicRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Address  *string `json:"address" validate:"omitempty,min=5"`
	Phone    *string `json:"phone" validate:"omitempty,min=7"`
	Timezone *string `json:"timezone" validate:"omitempty,min=3"`
	Active   *bool   `json:"active"`
}

func (r *UpdateClinicRequest) Update() types.ClinicUpdate {
	return types.ClinicUpdate{
		Name:     r.Name,
		Address:  r.Address,
		Phone:    r.Phone,
		Timezone: r.Timezone,
		Active:   r.Active,
	}
}

type ClinicResponse struct {
	Success bool          `json:"success"`
	Clinic  *types.Clinic `json:"clinic"`
}

type ClinicMetrics struct {
	ClinicID            string `json:"clinicId"`
	ClinicName          string `json:"clinicName"`
	Therapists          int    `json:"therapists"`
	Patients            int    `json:"patients"`
	AppointmentsToday   int    `json:"appointmentsToday"`
	MonthlyAppointments int    `json:"monthlyAppointments"`
	Active              bool   `json:"active"`
}

type DashboardTotals struct {
	ActivePatients            int  `json:"activePatients"`
	AppointmentsThisMonth     int  `json:"appointmentsThisMonth"`
	AppointmentsPreviousMonth int  `json:"appointmentsPreviousMonth"`
	MonthOverMonthPercent     *int `json:"monthOverMonthPercent"`
}

type Dashboard struct {
	Clinics []*ClinicMetrics `json:"clinics"`
	Totals  DashboardTotals  `json:"totals"`
}

type MonthCount struct {
	// Month is formatted as YYYY-MM.
	Month string `json:"month"`
	Total int    `json:"total"`
}

type StatusCounts struct {
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	NoShow    int `json:"noShow"`
}

func (c *StatusCounts) add(status types.AppointmentStatus) {
	switch status {
	case types.AppointmentScheduled:
		c.Scheduled++
	case types.AppointmentCompleted:
		c.Completed++
	case types.AppointmentCancelled:
		c.Cancelled++
	case types.AppointmentNoShow:
		c.NoShow++
	}
}

type Reports struct {
	AppointmentsThisMonth     int                      `json:"appointmentsThisMonth"`
	AppointmentsPreviousMonth int                      `json:"appointmentsPreviousMonth"`
	MonthOverMonthPercent     *int                     `json:"monthOverMonthPercent"`
	ActivePatients            int                      `json:"activePatients"`
	Completions               int                      `json:"completions"`
	Trend                     []*MonthCount            `json:"trend"`
	Statuses                  StatusCounts             `json:"statuses"`
	Recent                    []*types.AppointmentView `json:"recent"`
}
