package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/editkit/richdoc/document"
	"github.com/editkit/richdoc/editor"
	"github.com/editkit/richdoc/scripting"
)

func main() {
	docPath := flag.String("doc", "", "JSON document to transform")
	scriptPath := flag.String("script", "", "JavaScript transform to run")
	timeout := flag.Duration("timeout", 10*time.Second, "Script execution timeout")
	flag.Parse()

	if *docPath == "" || *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "docscript: -doc and -script are required")
		os.Exit(2)
	}
	if err := run(*docPath, *scriptPath, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "docscript: %v\n", err)
		os.Exit(1)
	}
}

func run(docPath, scriptPath string, timeout time.Duration) error {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	doc, err := document.FromJSON(data)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ed := editor.New(doc, editor.Config{})
	if err := scripting.Transform(ctx, ed, string(script), scripting.Config{}); err != nil {
		return fmt.Errorf("run script: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ed.Doc)
}
