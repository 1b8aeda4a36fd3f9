package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carelink/vitals/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
	Long:  "The users command is used to manage the users the vitals are recorded for",
}

var usersCreateParams = struct {
	UserId string
	Name   string
	Role   string
}{}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a user",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(createUser) },
}

func init() {
	usersCreateCmd.Flags().StringVarP(&usersCreateParams.UserId, "user", "u", "", "User id")
	usersCreateCmd.Flags().StringVar(&usersCreateParams.Name, "name", "", "Display name")
	usersCreateCmd.Flags().StringVar(&usersCreateParams.Role, "role", string(users.RolePatient), "Role of the user (PATIENT or GUARDIAN)")
	_ = usersCreateCmd.MarkFlagRequired("user")

	usersCmd.AddCommand(usersCreateCmd)
	rootCmd.AddCommand(usersCmd)
}

func createUser(repository users.Repository) error {
	role := users.Role(strings.ToUpper(usersCreateParams.Role))
	if role != users.RolePatient && role != users.RoleGuardian {
		return fmt.Errorf("unsupported role %q", usersCreateParams.Role)
	}

	user := users.User{
		UserId: usersCreateParams.UserId,
		Role:   role,
	}
	if usersCreateParams.Name != "" {
		user.Name = &usersCreateParams.Name
	}

	created, err := repository.Create(context.Background(), user)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", created.Id.Hex(), created.UserId)
	return nil
}
