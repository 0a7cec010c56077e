package system

import (
	"fmt"

	"github.com/rakesh-arrepu/HHH-sub000/internal/cli"
	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
)

type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *cli.Context) error {
	fmt.Printf("%s %s\n", constants.AppName, constants.Version)
	return nil
}
