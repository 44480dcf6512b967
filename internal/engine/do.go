package engine

import (
	"context"
	"fmt"

	"github.com/juju/errors"
)

const FmtErrContext = "`%s`" // errors.Annotatef(err, FmtErrContext, doer.String())

type Doer interface {
	Validate() error
	Do(context.Context) error
	String() string // for logs
}

type Nothing struct{ Name string }

func (self Nothing) Do(ctx context.Context) error { return nil }
func (self Nothing) Validate() error              { return nil }
func (self Nothing) String() string               { return self.Name }

type Func struct {
	Name string
	F    func(context.Context) error
}

func (self Func) Validate() error              { return nil }
func (self Func) Do(ctx context.Context) error { return self.F(ctx) }
func (self Func) String() string               { return self.Name }

type Fail struct{ E error }

func (self Fail) Validate() error              { return self.E }
func (self Fail) Do(ctx context.Context) error { return self.E }
func (self Fail) String() string               { return self.E.Error() }

type RepeatN struct {
	N uint
	D Doer
}

func (self RepeatN) Validate() error { return self.D.Validate() }
func (self RepeatN) Do(ctx context.Context) error {
	var err error
	for i := uint(1); i <= self.N && err == nil; i++ {
		err = self.D.Do(ctx)
	}
	return err
}
func (self RepeatN) String() string {
	return fmt.Sprintf("RepeatN(N=%d D=%s)", self.N, self.D.String())
}

var ErrArgNotApplied = errors.Errorf("Argument is not applied")
var ErrArgOverwrite = errors.Errorf("Argument already applied")

type Arg uint32

type ArgApplier interface {
	Apply(a Arg) (Doer, error)
}

// FuncArg is action template like `coin(?)`, usable only after Apply.
type FuncArg struct {
	Name string
	F    func(context.Context, Arg) error
	arg  Arg
	set  bool
}

func (fa FuncArg) Validate() error {
	if !fa.set {
		return errors.Annotatef(ErrArgNotApplied, FmtErrContext, fa.Name)
	}
	return nil
}
func (fa FuncArg) Do(ctx context.Context) error {
	if err := fa.Validate(); err != nil {
		return err
	}
	return fa.F(ctx, fa.arg)
}
func (fa FuncArg) String() string {
	if !fa.set {
		return fmt.Sprintf("%s(?)", fa.Name)
	}
	return fmt.Sprintf("%s(%d)", fa.Name, fa.arg)
}

func (fa FuncArg) Apply(a Arg) (Doer, error) {
	if fa.set {
		return nil, errors.Annotatef(ErrArgOverwrite, FmtErrContext, fa.Name)
	}
	fa.arg = a
	fa.set = true
	return fa, nil
}
