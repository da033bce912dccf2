package main

import (
	"github.com/leonardinius/gocalc/cmd"
)

func main() {
	cmd.Execute()
}
