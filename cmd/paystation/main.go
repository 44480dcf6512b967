package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coreos/go-systemd/daemon"
	"github.com/temoto/paystation/cmd/paystation/console"
	"github.com/temoto/paystation/cmd/paystation/subcmd"
	"github.com/temoto/paystation/cmd/paystation/teledecode"
	"github.com/temoto/paystation/internal/state"
	"github.com/temoto/paystation/log2"
	"github.com/temoto/paystation/tele"
)

var BuildVersion string = "unknown" // set by ldflags -X

var log = log2.NewStderr(log2.LDebug)
var modules = []subcmd.Mod{
	console.Mod,
	teledecode.Mod,
}

func main() {
	flagset := flag.NewFlagSet("paystation", flag.ContinueOnError)
	configPath := flagset.String("config", "paystation.hcl", "")
	flagset.Usage = func() {
		fmt.Fprintf(flagset.Output(), "Usage: paystation [options] command\nOptions:\n")
		flagset.PrintDefaults()
		fmt.Fprintf(flagset.Output(), "Commands:\n")
		for _, m := range modules {
			fmt.Fprintf(flagset.Output(), "- %s\n", m.Name)
		}
	}
	if err := flagset.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	mod, err := subcmd.Parse(flagset.Arg(0), modules)
	if err != nil {
		flagset.Usage()
		log.Fatal(err)
	}

	if subcmd.SdNotify("start") {
		// we're under systemd, assume systemd journal logging, remove timestamp
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}

	config := state.MustReadConfigFile(*configPath, log)
	ctx, g := state.NewContext(log, tele.New())
	g.BuildVersion = BuildVersion
	log.Debugf("paystation version=%s starting %s", BuildVersion, mod.Name)

	subcmd.SdNotify(daemon.SdNotifyReady)
	if err := mod.Main(ctx, config); err != nil {
		g.Fatal(err)
	}
	g.StopWait(tele.DefaultNetworkTimeout)
}
