package query

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"volcano/pkg/iterator"
	"volcano/pkg/types"
)

// Print is a sink that drives its input and writes each produced row to a
// text stream: cells joined by ',' and terminated by '\n', integers in
// decimal, strings verbatim, no quoting or escaping. A zero-column row
// writes nothing.
//
// Print emits no tuples of its own; Output is always empty and Next returns
// whatever the input returned.
type Print struct {
	iterator.UnaryOperator
	w io.Writer
}

// NewPrint creates a print sink over the given input and stream.
func NewPrint(child iterator.Operator, w io.Writer) (*Print, error) {
	if w == nil {
		return nil, errors.New("output stream cannot be nil")
	}
	base, err := iterator.NewUnaryOperator(child)
	if err != nil {
		return nil, err
	}
	return &Print{UnaryOperator: base, w: w}, nil
}

func (p *Print) Next() (bool, error) {
	ok, err := p.Child().Next()
	if err != nil || !ok {
		return ok, err
	}

	regs := p.Child().Output()
	if len(regs) == 0 {
		return true, nil
	}

	var sb strings.Builder
	for i, reg := range regs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(reg.String())
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		return false, errors.Wrap(err, "failed to write row")
	}
	return true, nil
}

func (p *Print) Output() []types.Register {
	return nil
}
