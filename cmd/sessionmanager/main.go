// github.com/doka-one/doka/cmd/sessionmanager/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/doka-one/doka/cmd/version"
	"github.com/doka-one/doka/internal/sessionmanager"
	"github.com/doka-one/doka/internal/transporthttp"
	"github.com/doka-one/doka/pkg"
	"github.com/doka-one/doka/pkg/daemonrunner"
)

var rootCmd = &cobra.Command{
	Use:   "sessionmanager",
	Short: "Doka Session Manager",
	Long:  "Tracks open sessions by opaque sid, enforcing idle and absolute TTLs.",
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the Session Manager service",
	Run: func(cmd *cobra.Command, args []string) {
		daemonrunner.Run("sessionmanager", fx.Options(
			pkg.Module(),
			transporthttp.Module(),
			sessionmanager.Module(),
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
