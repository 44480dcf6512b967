// Package console drives pay station from keyboard or piped stdin.
package console

import (
	"context"
	"strconv"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/paystation/cmd/paystation/subcmd"
	"github.com/temoto/paystation/helpers"
	"github.com/temoto/paystation/helpers/cli"
	"github.com/temoto/paystation/internal/engine"
	"github.com/temoto/paystation/internal/state"
	"github.com/temoto/paystation/log2"
)

const usage = `syntax: commands separated by whitespace
(main)
- 5 10 25  insert coin of this value, same as coin=N
- display  show minutes bought so far
- buy      print receipt and start over
- cancel   return inserted coins
- empty    collect money box
- status   show station state

(meta)
- log=yes|no  debug logging
- loop=N      repeat N times all commands on this line
`

var Mod = subcmd.Mod{Name: "console", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)
	g.Log.Debugf("config=%+v", g.Config)

	return cli.MainLoop("paystation", newExecutor(ctx), newCompleter(ctx))
}

func newCompleter(ctx context.Context) func(d prompt.Document) []prompt.Suggest {
	g := state.GetGlobal(ctx)
	actions := g.Engine.List()
	suggests := make([]prompt.Suggest, 0, len(actions)+3)
	for _, a := range actions {
		suggests = append(suggests, prompt.Suggest{Text: a})
	}
	for _, c := range g.Station.Coins() {
		suggests = append(suggests, prompt.Suggest{Text: strconv.FormatUint(uint64(c), 10), Description: "insert coin"})
	}
	suggests = append(suggests, prompt.Suggest{Text: "help"})

	return func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterFuzzy(suggests, d.GetWordBeforeCursor(), true)
	}
}

func newExecutor(ctx context.Context) func(string) {
	g := state.GetGlobal(ctx)

	return func(line string) {
		d, err := parseLine(ctx, line)
		if err != nil {
			g.Log.Error(errors.ErrorStack(err))
			return
		}
		tbegin := time.Now()
		if err = g.Engine.Exec(ctx, d); err != nil {
			g.Log.Error(errors.ErrorStack(err))
		}
		g.Log.Debugf("duration=%v", time.Since(tbegin))
	}
}

var doUsage = engine.Func{Name: "help", F: func(ctx context.Context) error {
	g := state.GetGlobal(ctx)
	g.Log.Infof(usage)
	return nil
}}

func newSetLog(debug bool) engine.Doer {
	return engine.Func{Name: "log", F: func(ctx context.Context) error {
		g := state.GetGlobal(ctx)
		if debug {
			g.Log.SetLevel(log2.LDebug)
		} else {
			g.Log.SetLevel(log2.LInfo)
		}
		return nil
	}}
}

func parseLine(ctx context.Context, line string) (engine.Doer, error) {
	g := state.GetGlobal(ctx)

	words := strings.Fields(line)
	if len(words) == 0 {
		return engine.Nothing{}, nil
	}

	// pre-parse special commands
	loopn := uint(0)
	wordsRest := make([]string, 0, len(words))
	for _, word := range words {
		switch {
		case word == "help" || word == "?":
			return doUsage, nil
		case strings.HasPrefix(word, "loop="):
			if loopn != 0 {
				return nil, errors.Errorf("multiple loop commands, expected at most one")
			}
			i, err := strconv.ParseUint(word[5:], 10, 32)
			if err != nil {
				return nil, errors.Annotatef(err, "word=%s", word)
			}
			loopn = uint(i)
		default:
			wordsRest = append(wordsRest, word)
		}
	}

	tx := engine.NewSeq("input: " + line)
	errs := make([]error, 0, len(wordsRest))
	for _, word := range wordsRest {
		d, err := parseCommand(g.Engine, word)
		if err == nil {
			tx.Append(d)
		} else {
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return nil, helpers.FoldErrors(errs)
	}

	if loopn != 0 {
		return engine.RepeatN{N: loopn, D: tx}, nil
	}
	return tx, nil
}

func parseCommand(eng *engine.Engine, word string) (engine.Doer, error) {
	switch {
	case word == "log=yes":
		return newSetLog(true), nil
	case word == "log=no":
		return newSetLog(false), nil
	case strings.HasPrefix(word, "coin="):
		return resolveCoin(eng, word, word[5:])
	case word[0] >= '0' && word[0] <= '9':
		return resolveCoin(eng, word, word)
	default:
		d, err := eng.Resolve(word)
		return d, errors.Annotatef(err, "word=%s", word)
	}
}

func resolveCoin(eng *engine.Engine, word, value string) (engine.Doer, error) {
	if _, err := strconv.ParseUint(value, 10, 32); err != nil {
		return nil, errors.Annotatef(err, "word=%s", word)
	}
	d, err := eng.Resolve("coin(" + value + ")")
	return d, errors.Annotatef(err, "word=%s", word)
}
