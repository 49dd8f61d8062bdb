// github.com/doka-one/doka/cmd/fileserver/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/doka-one/doka/cmd/version"
	"github.com/doka-one/doka/internal/fileserver"
	"github.com/doka-one/doka/internal/transporthttp"
	"github.com/doka-one/doka/pkg"
	"github.com/doka-one/doka/pkg/daemonrunner"
	"github.com/doka-one/doka/pkg/security/cek"
)

var rootCmd = &cobra.Command{
	Use:   "fileserver",
	Short: "Doka File Server",
	Long:  "Chunked upload, background full-text/preview processing, and download for one tenant's file schema at a time.",
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the File Server service",
	Run: func(cmd *cobra.Command, args []string) {
		daemonrunner.Run("fileserver", fx.Options(
			pkg.Module(),
			cek.Module(),
			transporthttp.Module(),
			fileserver.Module(),
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
