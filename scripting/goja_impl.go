package scripting

import (
	"context"

	"github.com/dop251/goja"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) RegisterDocument(dom DocumentDOM) error {
	docObj := e.vm.NewObject()

	if err := docObj.Set("nodeCount", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(dom.NodeCount())
	}); err != nil {
		return err
	}

	if err := docObj.Set("plainText", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(dom.PlainText())
	}); err != nil {
		return err
	}

	if err := docObj.Set("textPaths", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(dom.TextPaths())
	}); err != nil {
		return err
	}

	if err := docObj.Set("getText", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		path, ok := exportPath(call.Arguments[0])
		if !ok {
			return goja.Null()
		}
		content, err := dom.TextAt(path)
		if err != nil {
			return goja.Null()
		}
		return e.vm.ToValue(content)
	}); err != nil {
		return err
	}

	if err := docObj.Set("setText", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return e.vm.ToValue(false)
		}
		path, ok := exportPath(call.Arguments[0])
		if !ok {
			return e.vm.ToValue(false)
		}
		err := dom.ReplaceTextAt(path, call.Arguments[1].String())
		return e.vm.ToValue(err == nil)
	}); err != nil {
		return err
	}

	e.vm.Set("doc", docObj)
	return nil
}

func exportPath(v goja.Value) ([]int, bool) {
	// Arrays built in the script export as []interface{}; slices the DOM
	// handed out (e.g. doc.textPaths() entries) export as []int or *[]int.
	switch raw := v.Export().(type) {
	case []int:
		return append([]int(nil), raw...), true
	case *[]int:
		if raw == nil {
			return nil, false
		}
		return append([]int(nil), *raw...), true
	case []interface{}:
		path := make([]int, len(raw))
		for i, e := range raw {
			switch e := e.(type) {
			case int64:
				path[i] = int(e)
			case float64:
				path[i] = int(e)
			default:
				return nil, false
			}
		}
		return path, true
	default:
		return nil, false
	}
}
