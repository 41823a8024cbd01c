package scripting

import (
	"context"
	"fmt"

	"github.com/editkit/richdoc/document"
	"github.com/editkit/richdoc/editor"
	"github.com/editkit/richdoc/observability"
)

// EditorDOM exposes an editor's document to scripts. Edits go through editor
// operations, so they are recorded and invertible like any other change.
type EditorDOM struct {
	Ed *editor.Editor
}

func (d *EditorDOM) NodeCount() int {
	count := 0
	d.Ed.Doc.Walk(func(document.NodeEntry) bool {
		count++
		return true
	})
	return count
}

func (d *EditorDOM) PlainText() string {
	return d.Ed.Doc.PlainText()
}

func (d *EditorDOM) TextAt(path []int) (string, error) {
	t, ok := d.Ed.Doc.GetText(document.Path(path))
	if !ok {
		return "", fmt.Errorf("no text node at %v", path)
	}
	return t.Content, nil
}

func (d *EditorDOM) ReplaceTextAt(path []int, content string) error {
	old, err := d.TextAt(path)
	if err != nil {
		return err
	}
	p := document.Path(path)
	if err := d.Ed.Apply(document.RemoveText(p, 0, old)); err != nil {
		return err
	}
	return d.Ed.Apply(document.InsertText(p, 0, content))
}

func (d *EditorDOM) TextPaths() [][]int {
	var out [][]int
	for _, entry := range d.Ed.Doc.Texts() {
		out = append(out, []int(entry.Path))
	}
	return out
}

// Config carries optional collaborators for Transform.
type Config struct {
	Logger observability.Logger
	Tracer observability.Tracer
}

// Transform runs a script against the document, editing it in place through
// the editor's operation log.
func Transform(ctx context.Context, ed *editor.Editor, script string, cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = observability.NopLogger{}
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = observability.NopTracer()
	}

	ctx, span := tracer.StartSpan(ctx, "scripting.transform")
	defer span.Finish()

	eng := NewEngine()
	if err := eng.RegisterDocument(&EditorDOM{Ed: ed}); err != nil {
		span.SetError(err)
		return err
	}
	if _, err := eng.Execute(ctx, script); err != nil {
		span.SetError(err)
		log.Error("script failed", observability.Error("err", err))
		return err
	}
	log.Debug("script applied", observability.Int("operations", len(ed.Operations)))
	return nil
}
