package workload

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

type Kind int

const (
	AddFirst Kind = iota
	AddLast
	RemoveFirst
	RemoveLast
)

var kindNames = [...]string{"addFirst", "addLast", "removeFirst", "removeLast"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsAdd reports whether the operation inserts a value.
func (k Kind) IsAdd() bool {
	return k == AddFirst || k == AddLast
}

// Op is one deque operation. Value is only used by the add kinds.
type Op struct {
	Kind  Kind
	Value string
}

func (op Op) String() string {
	if op.Kind.IsAdd() {
		return op.Kind.String() + ":" + op.Value
	}
	return op.Kind.String()
}

// ParseOp 解析单个操作，例如 "addFirst:x" 或 "removeLast"
func ParseOp(s string) (Op, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	for i, kindName := range kindNames {
		if !strings.EqualFold(name, kindName) {
			continue
		}
		kind := Kind(i)
		if kind.IsAdd() != hasValue {
			if hasValue {
				return Op{}, errors.NotValidf("operation %q with a value", s)
			}
			return Op{}, errors.NotValidf("operation %q without a value", s)
		}
		return Op{Kind: kind, Value: value}, nil
	}
	return Op{}, errors.NotValidf("operation %q", s)
}

// ParseScript 解析以 ; 分隔的操作序列，忽略空项
func ParseScript(script string) ([]Op, error) {
	var ops []Op
	for i, part := range strings.Split(script, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		op, err := ParseOp(part)
		if err != nil {
			return nil, errors.Annotatef(err, "script entry %d", i)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// RandomScript returns n pseudo-random operations; the same seed always
// gives the same script. Adds are twice as likely as removes so the deque
// tends to grow.
func RandomScript(seed int64, n int) []Op {
	r := rand.New(rand.NewSource(seed))
	ops := make([]Op, 0, n)
	for i := 0; i < n; i++ {
		var kind Kind
		switch x := r.Intn(6); {
		case x < 2:
			kind = AddFirst
		case x < 4:
			kind = AddLast
		case x < 5:
			kind = RemoveFirst
		default:
			kind = RemoveLast
		}
		op := Op{Kind: kind}
		if kind.IsAdd() {
			op.Value = fmt.Sprintf("v%d", i)
		}
		ops = append(ops, op)
	}
	return ops
}

// Demo 返回示例操作序列
func Demo() []Op {
	return []Op{
		{Kind: AddFirst, Value: "First String"},
		{Kind: AddLast, Value: "Last String"},
		{Kind: AddFirst, Value: "Push First back one"},
		{Kind: AddLast, Value: "Push Last back one"},
		{Kind: RemoveLast},
	}
}
