package main

import (
	"fmt"
	"os"

	"mrichard/bourso-import/cmd/batch"
	"mrichard/bourso-import/cmd/categorize"
	"mrichard/bourso-import/cmd/importcmd"
	"mrichard/bourso-import/cmd/initdb"
	"mrichard/bourso-import/cmd/root"
	"mrichard/bourso-import/cmd/transactions"
)

func init() {
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(initdb.Cmd)
	root.Cmd.AddCommand(transactions.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
