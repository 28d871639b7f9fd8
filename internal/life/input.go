package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/randomizedcoder/axcontainers/internal/queue"
)

// InputKind identifies a command to the running simulation.
type InputKind uint8

const (
	InputPlace InputKind = iota + 1
	InputRemove
	InputPause
	InputClear
	InputRate
	InputBackup
	InputRestore
	InputQuit
)

var inputNames = map[InputKind]string{
	InputPlace:   "place",
	InputRemove:  "remove",
	InputPause:   "pause",
	InputClear:   "clear",
	InputRate:    "rate",
	InputBackup:  "backup",
	InputRestore: "restore",
	InputQuit:    "quit",
}

func (k InputKind) String() string {
	if s, ok := inputNames[k]; ok {
		return s
	}
	return "InputKind(" + strconv.Itoa(int(k)) + ")"
}

// Input is one command. X and Y are used by place and remove, Delta by
// rate.
type Input struct {
	Kind  InputKind
	X, Y  int64
	Delta int
}

// ErrInput is returned by ParseInput for lines it does not understand.
var ErrInput = errors.New("life: bad input")

// ParseInput parses a command line such as "place 3 -4" or "rate +10".
func ParseInput(line string) (Input, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Input{}, fmt.Errorf("%w: empty line", ErrInput)
	}

	var in Input
	for k, name := range inputNames {
		if strings.EqualFold(fields[0], name) {
			in.Kind = k
			break
		}
	}
	args := fields[1:]

	switch in.Kind {
	case 0:
		return Input{}, fmt.Errorf("%w: unknown command %q", ErrInput, fields[0])
	case InputPlace, InputRemove:
		if len(args) != 2 {
			return Input{}, fmt.Errorf("%w: %s needs x and y", ErrInput, in.Kind)
		}
		var err error
		if in.X, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			return Input{}, fmt.Errorf("%w: x: %w", ErrInput, err)
		}
		if in.Y, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return Input{}, fmt.Errorf("%w: y: %w", ErrInput, err)
		}
	case InputRate:
		if len(args) != 1 {
			return Input{}, fmt.Errorf("%w: rate needs a delta", ErrInput)
		}
		d, err := strconv.Atoi(args[0])
		if err != nil {
			return Input{}, fmt.Errorf("%w: delta: %w", ErrInput, err)
		}
		in.Delta = d
	default:
		if len(args) != 0 {
			return Input{}, fmt.Errorf("%w: %s takes no arguments", ErrInput, in.Kind)
		}
	}
	return in, nil
}

// MaxPendingInputs bounds the input backlog. Older inputs are dropped
// first.
const MaxPendingInputs = 1024

// Inputs is the pending input backlog. Entries are drawn from a pool and
// returned to it once handled or dropped.
type Inputs struct {
	q       *queue.Queue[*Input]
	pool    *Pool[Input]
	max     int
	dropped uint64
}

// NewInputs creates a backlog holding at most limit inputs (at least 1).
func NewInputs(pool *Pool[Input], limit int) *Inputs {
	return &Inputs{
		q:    queue.New[*Input]().SetDestructor(pool.Put),
		pool: pool,
		max:  max(1, limit),
	}
}

// Add appends in, dropping the oldest pending inputs if the backlog is
// full.
func (in *Inputs) Add(x Input) error {
	for in.q.Len() >= in.max {
		old, _ := in.q.Dequeue()
		in.q.DestroyItem(old)
		in.dropped++
	}
	p, err := in.pool.Get()
	if err != nil {
		return err
	}
	*p = x
	if err := in.q.Enqueue(p); err != nil {
		in.pool.Put(p)
		return err
	}
	return nil
}

// Next removes and returns the oldest pending input.
func (in *Inputs) Next() (Input, bool) {
	p, ok := in.q.Dequeue()
	if !ok {
		return Input{}, false
	}
	x := *p
	in.pool.Put(p)
	return x, true
}

// Len returns the number of pending inputs.
func (in *Inputs) Len() int {
	return in.q.Len()
}

// Dropped returns how many inputs were discarded because the backlog was
// full.
func (in *Inputs) Dropped() uint64 {
	return in.dropped
}

// Close returns every pending input to the pool.
func (in *Inputs) Close() {
	in.q.Destroy()
}
