// env.go
//
// The environment is a persistent singly linked chain of frames, one binding
// per frame. Extend allocates a new head without touching the old chain, so
// any number of closures and in-flight evaluations can share a tail. Modify
// overwrites the first matching frame in place, which is what makes the
// placeholder-then-mutate idiom for recursive define/letrec work: a closure
// that captured the placeholder frame observes the overwrite.
package scheme

// Frame is one name/value binding plus the parent link. A nil *Frame is the
// empty environment.
type Frame struct {
	name   string
	val    Value
	parent *Frame
}

// Extend allocates a new frame binding name to v on top of parent. O(1);
// parent is never mutated.
func Extend(name string, v Value, parent *Frame) *Frame {
	return &Frame{name: name, val: v, parent: parent}
}

// Find walks the chain and returns the first binding for name.
func (f *Frame) Find(name string) (Value, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.val, true
		}
	}
	return Value{}, false
}

// Modify overwrites the first binding for name in place. Reports whether a
// binding was found; it never creates one.
func (f *Frame) Modify(name string, v Value) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if cur.name == name {
			cur.val = v
			return true
		}
	}
	return false
}

// Env carries the current head of a frame chain. Evaluation threads an *Env
// so that define can push a frame that stays visible to the forms that
// follow it in the same sequence, while a closure captures only the *Frame
// snapshot current at lambda time.
type Env struct {
	head *Frame
}

// NewEnv returns an empty environment.
func NewEnv() *Env { return &Env{} }
