/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the proofly-rest credential issuance and verification service.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/cmd/proofly-rest/startcmd"
)

var logger = log.New("proofly-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "proofly-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("PROOFLY_SERVER_VERSION")),
	))
	rootCmd.AddCommand(startcmd.GetMaintenanceCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run proofly-rest", log.WithError(err))
	}
}
