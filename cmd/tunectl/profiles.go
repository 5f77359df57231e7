package main

import (
	"github.com/spf13/cobra"

	"github.com/perfkit/tunectl/pkg/output"
	"github.com/perfkit/tunectl/pkg/profiles"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available tuning profiles",
	Run: func(cmd *cobra.Command, args []string) {
		output.NewRenderer(cmd.OutOrStdout()).RenderProfileList(profiles.Catalog())
	},
}
