package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rule-set variants",
	Long:  `Shows the variants that can be passed to play and sim.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <id>' to play a variant.")
}
