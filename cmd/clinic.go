// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fisioapp/clinic-service/internal/types"
	"github.com/fisioapp/clinic-service/pkg/clinics"
)

var clinicTimezone string

var clinicCmd = &cobra.Command{
	Use:   "clinic",
	Short: "Manage clinics",
}

var createClinicCmd = &cobra.Command{
	Use:   "create [name] [address] [phone]",
	Short: "Create a clinic",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		req := &clinics.CreateClinicRequest{
			Name:     args[0],
			Address:  args[1],
			Phone:    args[2],
			Timezone: clinicTimezone,
		}

		resp := new(clinics.ClinicResponse)
		if err := client.do(cmd.Context(), http.MethodPost, "/api/admin/clinics", req, resp); err != nil {
			return fmt.Errorf("failed to create clinic: %w", err)
		}

		fmt.Printf("Clinic created: %s (ID: %s)\n", resp.Clinic.Name, resp.Clinic.ID)
		return nil
	},
}

var listClinicsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the clinics visible to the caller",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var resp []*types.Clinic
		if err := client.do(cmd.Context(), http.MethodGet, "/api/admin/clinics", nil, &resp); err != nil {
			return fmt.Errorf("failed to list clinics: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTIMEZONE\tACTIVE\tCREATED_AT")
		for _, c := range resp {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", c.ID, c.Name, c.Timezone, c.Active, c.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var clinicReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show the appointment trend and activity of the caller's clinics",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		resp := new(clinics.Reports)
		if err := client.do(cmd.Context(), http.MethodGet, "/api/admin/reports", nil, resp); err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}

		fmt.Printf("Appointments this month: %d (previous month: %d)\n", resp.AppointmentsThisMonth, resp.AppointmentsPreviousMonth)
		fmt.Printf("Active patients: %d, exercise completions: %d\n", resp.ActivePatients, resp.Completions)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "MONTH\tAPPOINTMENTS")
		for _, m := range resp.Trend {
			fmt.Fprintf(w, "%s\t%d\n", m.Month, m.Total)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clinicCmd)
	clinicCmd.AddCommand(createClinicCmd)
	clinicCmd.AddCommand(listClinicsCmd)
	clinicCmd.AddCommand(clinicReportsCmd)

	createClinicCmd.Flags().StringVar(&clinicTimezone, "timezone", "", "IANA timezone, the server default applies when empty")
}
