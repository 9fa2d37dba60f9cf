package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

type Command = cli.Command

type Flag = cli.Flag
type StringFlag = cli.StringFlag
type BoolFlag = cli.BoolFlag

func Fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
