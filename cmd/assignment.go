// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fisioapp/clinic-service/pkg/assignments"
)

var secondaryTherapists []string

var assignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Manage patient care teams",
}

var setAssignmentCmd = &cobra.Command{
	Use:   "set [patient-id] [clinic-id] [primary-therapist-id]",
	Short: "Replace the care team of a patient in a clinic",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		req := &assignments.ReconcileRequest{
			ClinicID:              args[1],
			PrimaryTherapistID:    args[2],
			SecondaryTherapistIDs: secondaryTherapists,
		}

		resp := new(assignments.ReconcileResponse)
		if err := client.do(cmd.Context(), http.MethodPut, "/api/admin/patient-assignments/"+args[0], req, resp); err != nil {
			return fmt.Errorf("failed to set assignments: %w", err)
		}

		fmt.Printf("Patient %s: primary %s, secondary %v\n", resp.PatientID, resp.PrimaryTherapistID, resp.SecondaryTherapistIDs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assignmentCmd)
	assignmentCmd.AddCommand(setAssignmentCmd)

	setAssignmentCmd.Flags().StringSliceVar(&secondaryTherapists, "secondary", []string{}, "Comma-separated list of secondary therapist IDs")
}
