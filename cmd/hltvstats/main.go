package main

import (
	"hltvstats/cmd/hltvstats/commands"
	"hltvstats/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
