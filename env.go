package ravel

import (
	"reflect"
	"sync"
)

// env carries values down the build/rebuild call tree so a view deep in the
// tree can read something an ancestor set (a theme, a logger, a locale)
// without widening every intermediate View's type. Ported from the
// teacher's context.go (vctx/WithValue[T]/ValueOf[T]); see DESIGN.md.
//
// This is not a reactive signal graph: values are copied down once per
// cycle, never subscribed to. A view that wants to react to an env value
// changing simply reads it again next cycle, the same as it reads the model.
type env struct {
	ml sync.Mutex
	kv map[reflect.Type]any
}

func newEnv() *env { return &env{kv: make(map[reflect.Type]any)} }

// WithEnv returns a Cx carrying value alongside whatever cx.env already
// carries, keyed by T's type. An existing value of the same type is
// shadowed for the remainder of this subtree, not overwritten for siblings
// built from the original cx.
func WithEnv[T any](cx Cx, value T) Cx {
	parent := cx.env
	next := newEnv()
	if parent != nil {
		parent.ml.Lock()
		for k, v := range parent.kv {
			next.kv[k] = v
		}
		parent.ml.Unlock()
	}
	next.kv[reflect.TypeFor[T]()] = value
	cx.env = next
	return cx
}

// EnvValue returns the value of type T nearest to cx in the tree, or the
// zero value of T if none was set by an ancestor.
func EnvValue[T any](cx Cx) T {
	var zero T
	if cx.env == nil {
		return zero
	}
	cx.env.ml.Lock()
	defer cx.env.ml.Unlock()
	v, ok := cx.env.kv[reflect.TypeFor[T]()]
	if !ok {
		return zero
	}
	return v.(T)
}
