package predictive

import (
	"context"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
)

// Parser stacks live for a single parse. To avoid re-allocating them for
// each input, we pool them.
type stackPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStackPool *stackPool

func init() {
	globalStackPool = &stackPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return arraystack.New(), nil
		})
	globalStackPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStackPool.opool = pool.NewObjectPool(globalStackPool.ctx, factory, config)
}

// symbolStack is the parser stack.
type symbolStack struct {
	stack *arraystack.Stack
}

// borrowStack gets an empty stack from the pool.
func borrowStack() *symbolStack {
	o, err := globalStackPool.opool.BorrowObject(globalStackPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow parser stack from pool: %v", err)
		return &symbolStack{stack: arraystack.New()}
	}
	return &symbolStack{stack: o.(*arraystack.Stack)}
}

// release clears the stack and puts it back into the pool.
func (s *symbolStack) release() {
	s.stack.Clear()
	_ = globalStackPool.opool.ReturnObject(globalStackPool.ctx, s.stack)
	s.stack = nil
}

func (s *symbolStack) push(A ll.Symbol) {
	s.stack.Push(A)
}

// pushRHS pushes the symbols of a right hand side in reverse order, leaving
// the leftmost symbol on top. ε-rules push nothing.
func (s *symbolStack) pushRHS(r *ll.Rule) {
	if r.IsEpsilon() {
		return
	}
	rhs := r.RHS()
	for i := len(rhs) - 1; i >= 0; i-- {
		s.stack.Push(rhs[i])
	}
}

func (s *symbolStack) pop() ll.Symbol {
	v, _ := s.stack.Pop()
	return v.(ll.Symbol)
}

func (s *symbolStack) top() (ll.Symbol, bool) {
	v, ok := s.stack.Peek()
	if !ok {
		return ll.Symbol{}, false
	}
	return v.(ll.Symbol), true
}

func (s *symbolStack) size() int {
	return s.stack.Size()
}

// snapshot returns the stack contents, top first.
func (s *symbolStack) snapshot() []ll.Symbol {
	values := s.stack.Values()
	syms := make([]ll.Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(ll.Symbol)
	}
	return syms
}
