package workload

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/juju/errors"

	"github.com/liuys-dase/deque/deque"
	"github.com/liuys-dase/deque/timecounter"
)

// Result 记录一次回放的结果
type Result struct {
	Applied       int      // 成功执行的操作数
	EmptyRemovals int      // 在空队列上的删除次数
	Removed       []string // 按删除顺序记录被删除的元素
	Fingerprint   uint64
}

type Runner struct {
	counter *timecounter.DequeTimeCounter
}

func NewRunner(counter *timecounter.DequeTimeCounter) *Runner {
	if counter == nil {
		counter = timecounter.NewDequeTimeCounter()
	}
	return &Runner{counter: counter}
}

// Run applies ops to d in order. A remove on an empty deque is counted in
// EmptyRemovals and skipped; any other error stops the run.
func (r *Runner) Run(d *deque.Deque[string], ops []Op) (*Result, error) {
	res := &Result{}
	for i, op := range ops {
		start := time.Now()
		err := apply(d, op, res)
		r.counter.Add(op.Kind.String(), start)
		if errors.Is(err, deque.ErrEmptyCollection) {
			res.EmptyRemovals++
			continue
		}
		if err != nil {
			return res, errors.Annotatef(err, "op %d (%v)", i, op)
		}
		res.Applied++
	}
	res.Fingerprint = Fingerprint(d)
	return res, nil
}

func apply(d *deque.Deque[string], op Op, res *Result) error {
	var (
		v   string
		err error
	)
	switch op.Kind {
	case AddFirst:
		return d.AddFirst(op.Value)
	case AddLast:
		return d.AddLast(op.Value)
	case RemoveFirst:
		v, err = d.RemoveFirst()
	case RemoveLast:
		v, err = d.RemoveLast()
	default:
		return errors.NotValidf("operation kind %v", op.Kind)
	}
	if err != nil {
		return err
	}
	res.Removed = append(res.Removed, v)
	return nil
}

// Fingerprint hashes the items from head to tail. Each item is followed by
// a zero byte so that ["ab"] and ["a", "b"] differ.
func Fingerprint(d *deque.Deque[string]) uint64 {
	h := xxhash.New()
	it := d.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		h.WriteString(v)
		h.Write([]byte{0})
	}
	return h.Sum64()
}
