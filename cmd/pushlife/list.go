package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushlife/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rule variants",
	Long:  `Shows every registered variant with its rules.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, g := range games {
		desc := g.Description
		if desc == "" {
			desc = g.Title
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, desc)
	}

	fmt.Println()
	fmt.Println("Run 'pushlife play <id>' to play a variant.")
}
