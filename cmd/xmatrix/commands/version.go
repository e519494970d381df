package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/xmatrix/internal/version"
)

// VersionCmd prints the build version
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the xmatrix version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.VersionTag)
	},
}
