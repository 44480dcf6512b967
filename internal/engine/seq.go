package engine

import (
	"context"

	"github.com/juju/errors"
	"github.com/temoto/paystation/helpers"
)

// Seq runs actions in order, first error aborts the rest.
type Seq struct {
	name  string
	items []Doer
}

func NewSeq(name string) *Seq {
	return &Seq{name: name}
}

func (seq *Seq) Append(d Doer) *Seq {
	seq.items = append(seq.items, d)
	return seq
}

func (seq *Seq) Len() int { return len(seq.items) }

func (seq *Seq) Validate() error {
	errs := make([]error, 0, len(seq.items))
	for _, d := range seq.items {
		if err := d.Validate(); err != nil {
			err = errors.Annotatef(err, "seq=%s node=%s validate", seq.String(), d.String())
			errs = append(errs, err)
		}
	}
	return helpers.FoldErrors(errs)
}

func (seq *Seq) Do(ctx context.Context) error {
	for _, d := range seq.items {
		if err := d.Do(ctx); err != nil {
			return errors.Annotatef(err, FmtErrContext, d.String())
		}
	}
	return nil
}

func (seq *Seq) String() string {
	return seq.name
}
