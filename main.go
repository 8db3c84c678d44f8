// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	cmd "github.com/zapenv/zap/cmd/zap"
)

func main() {
	os.Exit(cmd.Execute())
}
