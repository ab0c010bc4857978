package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/odpf/console/client/cmd"
)

var errRequestFail = errors.New("🔥 unable to complete request successfully")

func main() {
	command := cmd.New()
	if err := command.Execute(); err != nil {
		if hint := cmd.ErrorHint(err); hint != "" {
			fmt.Println(hint)
		}
		fmt.Println(errRequestFail)
		os.Exit(1)
	}
}
