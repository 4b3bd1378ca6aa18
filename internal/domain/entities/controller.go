package entities

import "github.com/spf13/cobra"

// ControllerBind holds the metadata a controller exposes to the dispatcher.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every command handler reachable from the CLI.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
