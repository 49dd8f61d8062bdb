// github.com/doka-one/doka/cmd/keymanager/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/doka-one/doka/cmd/version"
	"github.com/doka-one/doka/internal/keymanager"
	"github.com/doka-one/doka/internal/transporthttp"
	"github.com/doka-one/doka/pkg"
	"github.com/doka-one/doka/pkg/daemonrunner"
	"github.com/doka-one/doka/pkg/security/cek"
)

var rootCmd = &cobra.Command{
	Use:   "keymanager",
	Short: "Doka Key Manager",
	Long:  "Wraps and hands out per-tenant Customer Keys under the process-wide Common Edible Key.",
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the Key Manager service",
	Run: func(cmd *cobra.Command, args []string) {
		daemonrunner.Run("keymanager", fx.Options(
			pkg.Module(),
			cek.Module(),
			transporthttp.Module(),
			keymanager.Module(),
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
