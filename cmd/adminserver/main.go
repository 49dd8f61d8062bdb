// github.com/doka-one/doka/cmd/adminserver/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/doka-one/doka/cmd/version"
	"github.com/doka-one/doka/internal/adminserver"
	"github.com/doka-one/doka/internal/transporthttp"
	"github.com/doka-one/doka/pkg"
	"github.com/doka-one/doka/pkg/daemonrunner"
	"github.com/doka-one/doka/pkg/security/cek"
)

var rootCmd = &cobra.Command{
	Use:   "adminserver",
	Short: "Doka Admin Server",
	Long:  "Provisions tenants and authenticates app users against dokaadmin.customer/appuser.",
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the Admin Server service",
	Run: func(cmd *cobra.Command, args []string) {
		daemonrunner.Run("adminserver", fx.Options(
			pkg.Module(),
			cek.Module(),
			transporthttp.Module(),
			adminserver.Module(),
		))
	},
}

func main() {
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(version.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
