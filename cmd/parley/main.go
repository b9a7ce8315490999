package main

import (
	parleycmd "github.com/parleychat/parley/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	parleycmd.SetVersionInfo(version, commit)
	parleycmd.Execute()
}
