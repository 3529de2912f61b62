// Command doccmd runs shell-prompt-led command examples embedded in
// documentation files and reports any mismatch between the command's
// captured output and what the documentation claims it produces.
package main

import (
	"os"

	"github.com/kendru/doccmd/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
