// Package fixture provides a deterministic sample document for exercising
// the document deserializer, typically from benchmarks.
package fixture

import "github.com/editkit/richdoc/document"

// Input returns the benchmark input: a plain-data document of ten identical
// quote blocks, each wrapping one paragraph of five text runs. Every call
// builds a fresh value, so callers that mutate the result cannot corrupt
// later calls.
func Input() map[string]any {
	nodes := make([]any, 0, 10)
	for i := 0; i < 10; i++ {
		nodes = append(nodes, map[string]any{
			"object": "block",
			"type":   "quote",
			"nodes": []any{
				map[string]any{
					"object": "block",
					"type":   "paragraph",
					"nodes": []any{
						text("This is editable "),
						text("rich", "bold"),
						text(" text, "),
						text("much", "italic"),
						text(" better than a textarea!"),
					},
				},
			},
		})
	}
	return map[string]any{
		"document": map[string]any{"nodes": nodes},
	}
}

// Run feeds plain data to the deserializer, discarding the resulting
// document. Deserialization errors propagate to the caller unmodified.
func Run(v any) error {
	_, err := document.Decode(v)
	return err
}

func text(content string, marks ...string) map[string]any {
	rec := map[string]any{"object": "text", "text": content}
	if len(marks) > 0 {
		ms := make([]any, len(marks))
		for i, m := range marks {
			ms[i] = m
		}
		rec["marks"] = ms
	}
	return rec
}
