package main

import (
	"context"
	"fmt"

	"github.com/postboard/backend/internal/database"
	"github.com/postboard/backend/internal/models"
	"github.com/postboard/backend/internal/repository"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	userAddEmail    string
	userAddPassword string
	userAddStaff    bool
)

var userAddCmd = &cobra.Command{
	Use:   "useradd <username>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		hash, err := bcrypt.GenerateFromPassword([]byte(userAddPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &models.User{
			Username:     username,
			Email:        userAddEmail,
			PasswordHash: string(hash),
			IsActive:     true,
			IsStaff:      userAddStaff,
		}
		users := repository.NewUserRepository(database.DB)
		if err := users.CreateUser(context.Background(), user); err != nil {
			return err
		}

		fmt.Printf("Created user %q (id=%d, staff=%v)\n", user.Username, user.ID, user.IsStaff)
		return nil
	},
}

var userDelCmd = &cobra.Command{
	Use:   "userdel <username>",
	Short: "Delete a user account and everything it owns",
	Long: `Delete a user account. The user's posts, reactions given and received,
and follow relationships in both directions are removed in the same
transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		users := repository.NewUserRepository(database.DB)

		user, err := users.GetUserByUsername(ctx, args[0])
		if err != nil {
			return err
		}
		if err := users.DeleteUser(ctx, user.ID); err != nil {
			return err
		}

		fmt.Printf("Deleted user %q (id=%d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddEmail, "email", "", "Email address")
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "password", "Initial password")
	userAddCmd.Flags().BoolVar(&userAddStaff, "staff", false, "Grant staff privileges")
	_ = userAddCmd.MarkFlagRequired("email")
}
