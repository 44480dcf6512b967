// Package teledecode prints telemetry captured from broker, one hex message per line.
// Example: mosquitto_sub -t 'ps+/w/1t' -F '%x' | paystation tele-decode
package teledecode

import (
	"context"
	"encoding/hex"

	"github.com/c-bata/go-prompt"
	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/temoto/paystation/cmd/paystation/subcmd"
	"github.com/temoto/paystation/helpers/cli"
	"github.com/temoto/paystation/internal/state"
	"github.com/temoto/paystation/tele"
)

const modName = "tele-decode"

var Mod = subcmd.Mod{Name: modName, Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	return cli.MainLoop(modName, newExecutor(ctx), newCompleter(ctx))
}

func newCompleter(ctx context.Context) func(d prompt.Document) []prompt.Suggest {
	return func(d prompt.Document) []prompt.Suggest { return nil }
}

func newExecutor(ctx context.Context) func(string) {
	g := state.GetGlobal(ctx)
	return func(line string) {
		if line == "" {
			return
		}
		s, err := decode(line)
		if err != nil {
			g.Log.Error(err)
			return
		}
		g.Log.Info(s)
	}
}

func decode(line string) (string, error) {
	// mosquitto_sub wrongly strips leading zero in hex format
	if len(line)%2 == 1 {
		line = "0" + line
	}
	b, err := hex.DecodeString(line)
	if err != nil {
		return "", errors.Annotate(err, "hex decode")
	}
	var tm tele.Telemetry
	if err := proto.Unmarshal(b, &tm); err != nil {
		return "", errors.Annotate(err, "proto unmarshal")
	}
	return proto.CompactTextString(&tm), nil
}
