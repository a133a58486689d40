// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fisioapp/clinic-service/internal/types"
	"github.com/fisioapp/clinic-service/pkg/users"
)

var (
	userPassword  string
	userPhone     string
	userClinicID  string
	userClinicIDs []string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage staff and patient accounts",
}

var createUserCmd = &cobra.Command{
	Use:   "create [email] [role] [full-name]",
	Short: "Create a user with a password",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		req := &users.CreateUserRequest{
			Email:     args[0],
			Password:  userPassword,
			Role:      types.Role(args[1]),
			FullName:  args[2],
			Phone:     userPhone,
			ClinicID:  userClinicID,
			ClinicIDs: userClinicIDs,
		}

		resp := new(users.CreateUserResponse)
		if err := client.do(cmd.Context(), http.MethodPost, "/api/admin/users", req, resp); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User created: %s (clinics: %v)\n", resp.UserID, resp.ClinicIDs)
		return nil
	},
}

var setUserStatusCmd = &cobra.Command{
	Use:   "status [user-id] [true|false]",
	Short: "Activate or deactivate a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid status %q: %w", args[1], err)
		}

		client, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		resp := new(users.SetStatusResponse)
		if err := client.do(cmd.Context(), http.MethodPatch, "/api/admin/users/"+args[0]+"/status", &users.SetStatusRequest{Active: &active}, resp); err != nil {
			return fmt.Errorf("failed to update user status: %w", err)
		}

		fmt.Printf("User %s active: %v\n", resp.UserID, resp.Active)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(createUserCmd)
	userCmd.AddCommand(setUserStatusCmd)

	createUserCmd.Flags().StringVar(&userPassword, "password", "", "Initial password")
	createUserCmd.Flags().StringVar(&userPhone, "phone", "", "Phone number")
	createUserCmd.Flags().StringVar(&userClinicID, "clinic-id", "", "Clinic of the user")
	createUserCmd.Flags().StringSliceVar(&userClinicIDs, "clinic-ids", []string{}, "Additional clinics of a patient")

	_ = createUserCmd.MarkFlagRequired("password")
	_ = createUserCmd.MarkFlagRequired("phone")
}
