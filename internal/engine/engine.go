// Package engine resolves named actions like `buy` or `coin(25)` and runs them.
package engine

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"github.com/juju/errors"
	"github.com/temoto/paystation/log2"
)

type ErrNotResolved struct{ msg string }

func NewErrNotResolved(action string) ErrNotResolved {
	return ErrNotResolved{msg: fmt.Sprintf("action=%s not resolved", action)}
}
func (e ErrNotResolved) Error() string { return e.msg }

type Engine struct {
	Log     *log2.Log
	lk      sync.RWMutex
	actions map[string]Doer
}

func NewEngine(log *log2.Log) *Engine {
	return &Engine{
		Log:     log,
		actions: make(map[string]Doer, 16),
	}
}

func (self *Engine) Register(action string, d Doer) {
	self.lk.Lock()
	self.actions[action] = d
	self.lk.Unlock()
}

func (self *Engine) RegisterNewFunc(name string, fun func(context.Context) error) {
	self.Register(name, Func{Name: name, F: fun})
}

// RegisterNewFuncArg registers `name(?)` template.
func (self *Engine) RegisterNewFuncArg(name string, fun func(context.Context, Arg) error) {
	self.Register(name+"(?)", FuncArg{Name: name, F: fun})
}

var reActionArg = regexp.MustCompile(`^(.+)\((\d+)\)$`)

func (self *Engine) Resolve(action string) (Doer, error) {
	self.lk.RLock()
	defer self.lk.RUnlock()

	if d, ok := self.actions[action]; ok {
		return d, nil
	}
	match := reActionArg.FindStringSubmatch(action)
	if match == nil {
		return nil, NewErrNotResolved(action)
	}
	norm := match[1] + "(?)"
	d, ok := self.actions[norm]
	if !ok {
		self.Log.Debugf("resolve action=%s normalized=%s not found", action, norm)
		return nil, NewErrNotResolved(action)
	}
	argn, err := strconv.ParseUint(match[2], 10, 32)
	if err != nil {
		return nil, errors.Annotatef(err, FmtErrContext, action)
	}
	aa, ok := d.(ArgApplier)
	if !ok {
		return nil, errors.Annotatef(ErrArgNotApplied, FmtErrContext, action)
	}
	return aa.Apply(Arg(argn))
}

var reNotSpace = regexp.MustCompile(`\S+`)

// ParseText resolves each whitespace separated word into one Seq.
func (self *Engine) ParseText(tag, text string) (*Seq, error) {
	words := reNotSpace.FindAllString(text, -1)
	tx := NewSeq(tag)
	for _, word := range words {
		d, err := self.Resolve(word)
		if err != nil {
			return nil, errors.Annotatef(err, "text=%s unparsed=%s", text, word)
		}
		tx.Append(d)
	}
	return tx, nil
}

func (self *Engine) Exec(ctx context.Context, d Doer) error {
	if err := d.Validate(); err != nil {
		return err
	}
	self.Log.Debugf("engine exec %s", d.String())
	return d.Do(ctx)
}

func (self *Engine) List() []string {
	self.lk.RLock()
	r := make([]string, 0, len(self.actions))
	for k := range self.actions {
		r = append(r, k)
	}
	self.lk.RUnlock()
	sort.Strings(r)
	return r
}

func IsNotResolved(err error) bool {
	_, ok := errors.Cause(err).(ErrNotResolved)
	return ok
}
