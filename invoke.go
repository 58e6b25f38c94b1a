package tape

import (
	"fmt"
	"reflect"
)

// callFn invokes fnVal with argVals, resolving the three shapes fn may take
// per this package's data model: a plain Go function, a [Broadcasted]
// wrapper (applied element-wise across any slice arguments), or a
// reflect.Type used as a constructor (the Go analogue of "type used as a
// constructor" in the source language this tape is traced from — treated
// as a conversion of its single argument).
//
// Any panic raised by fnVal itself propagates unchanged: this package does
// no recovery, wrapping, or partial rollback around user code, whether
// invoked eagerly during NewCall or later during playback.
func callFn(fnVal any, argVals []any) any {
	if b, ok := fnVal.(Broadcasted); ok {
		return broadcastCall(b.Fn, argVals)
	}
	if t, ok := fnVal.(reflect.Type); ok {
		return convertTo(t, argVals)
	}
	return callPlainFunc(reflect.ValueOf(fnVal), argVals)
}

func convertTo(t reflect.Type, argVals []any) any {
	if len(argVals) != 1 {
		panic(fmt.Errorf("tape: type used as constructor takes exactly one argument, got %d", len(argVals)))
	}
	return reflect.ValueOf(argVals[0]).Convert(t).Interface()
}

func callPlainFunc(rf reflect.Value, argVals []any) any {
	if rf.Kind() != reflect.Func {
		panic(fmt.Errorf("tape: fn must be a function, a reflect.Type, or a Variable pointing to one, got %s", rf.Kind()))
	}
	in := make([]reflect.Value, len(argVals))
	for i, a := range argVals {
		in[i] = reflect.ValueOf(a)
	}
	out := rf.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		vals := make([]any, len(out))
		for i, o := range out {
			vals[i] = o.Interface()
		}
		return vals
	}
}

// broadcastCall applies fn to argVals element-wise: any argument that is a
// slice is indexed per output position (or, if it holds exactly one
// element, treated as a repeated scalar); every other argument is passed
// through unchanged to every application. Non-slice-only argument lists
// fall back to a single direct call.
func broadcastCall(fn any, argVals []any) any {
	rf := reflect.ValueOf(fn)

	length := -1
	sawSlice := false
	for _, a := range argVals {
		rv := reflect.ValueOf(a)
		if rv.Kind() == reflect.Slice {
			sawSlice = true
		}
		if rv.Kind() == reflect.Slice && rv.Len() != 1 {
			if length == -1 {
				length = rv.Len()
			} else if rv.Len() != length {
				panic(fmt.Errorf("tape: broadcast length mismatch: %d vs %d", length, rv.Len()))
			}
		}
	}
	if !sawSlice {
		return callPlainFunc(rf, argVals)
	}
	if length == -1 {
		length = 1
	}

	results := make([]any, length)
	for i := range length {
		elemArgs := make([]any, len(argVals))
		for j, a := range argVals {
			rv := reflect.ValueOf(a)
			if rv.Kind() == reflect.Slice {
				idx := i
				if rv.Len() == 1 {
					idx = 0
				}
				elemArgs[j] = rv.Index(idx).Interface()
			} else {
				elemArgs[j] = a
			}
		}
		results[i] = callPlainFunc(rf, elemArgs)
	}
	return results
}
