// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fisioapp/clinic-service/internal/types"
	"github.com/fisioapp/clinic-service/pkg/invitations"
)

var (
	invitationMaxUses   int
	invitationExpiresAt string
)

var invitationCmd = &cobra.Command{
	Use:   "invitation",
	Short: "Manage patient invitation codes",
}

var createInvitationCmd = &cobra.Command{
	Use:   "create [clinic-id]",
	Short: "Generate an invitation code for a clinic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		req := &invitations.CreateCodeRequest{ClinicID: args[0]}
		if cmd.Flags().Changed("max-uses") {
			req.MaxUses = &invitationMaxUses
		}
		if invitationExpiresAt != "" {
			req.ExpiresAt = &invitationExpiresAt
		}

		resp := new(invitations.CreateCodeResponse)
		if err := client.do(cmd.Context(), http.MethodPost, "/api/admin/invitation-codes", req, resp); err != nil {
			return fmt.Errorf("failed to create invitation code: %w", err)
		}

		fmt.Printf("Invitation code: %s (ID: %s)\n", resp.InvitationCode, resp.ID)
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list [clinic-id]",
	Short: "List invitation codes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		path := "/api/admin/invitation-codes"
		if len(args) == 1 {
			path += "?clinicId=" + url.QueryEscape(args[0])
		}

		var resp []*types.InvitationCodeView
		if err := client.do(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
			return fmt.Errorf("failed to list invitation codes: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CODE\tCLINIC_ID\tUSES\tSTATUS\tEXPIRES_AT")
		for _, c := range resp {
			expires := "never"
			if c.ExpiresAt != nil {
				expires = c.ExpiresAt.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\n", c.Code, c.ClinicID, c.UsedCount, c.MaxUses, c.Status, expires)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invitationCmd)
	invitationCmd.AddCommand(createInvitationCmd)
	invitationCmd.AddCommand(listInvitationsCmd)

	createInvitationCmd.Flags().IntVar(&invitationMaxUses, "max-uses", 50, "Number of registrations the code allows")
	createInvitationCmd.Flags().StringVar(&invitationExpiresAt, "expires-at", "", "RFC3339 expiry, the code never expires when empty")
}
