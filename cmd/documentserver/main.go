// github.com/doka-one/doka/cmd/documentserver/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/doka-one/doka/cmd/version"
	"github.com/doka-one/doka/internal/documentserver"
	"github.com/doka-one/doka/internal/transporthttp"
	"github.com/doka-one/doka/pkg"
	"github.com/doka-one/doka/pkg/daemonrunner"
	"github.com/doka-one/doka/pkg/security/cek"
)

var rootCmd = &cobra.Command{
	Use:   "documentserver",
	Short: "Doka Document Server",
	Long:  "Items, tags, property values, filtered search, and full-text indexing for one tenant's content schema at a time.",
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the Document Server service",
	Run: func(cmd *cobra.Command, args []string) {
		daemonrunner.Run("documentserver", fx.Options(
			pkg.Module(),
			cek.Module(),
			transporthttp.Module(),
			documentserver.Module(),
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
