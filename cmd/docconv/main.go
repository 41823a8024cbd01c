package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/editkit/richdoc/document"
	"github.com/editkit/richdoc/htmlconv"
	"github.com/editkit/richdoc/markdown"
	"github.com/editkit/richdoc/media"
)

type options struct {
	inPath  string
	outPath string
	from    string
	to      string
	probe   bool
	stats   bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docconv: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "docconv: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/docconv [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.inPath, "in", "-", "Input file (- for stdin)")
	flag.StringVar(&opts.outPath, "out", "-", "Output file (- for stdout)")
	flag.StringVar(&opts.from, "from", "json", "Input format: json, markdown, html")
	flag.StringVar(&opts.to, "to", "json", "Output format: json, html, text")
	flag.BoolVar(&opts.probe, "probe-images", false, "Probe local image files for dimensions on HTML import")
	flag.BoolVar(&opts.stats, "stats", false, "Print node counts and fingerprint to stderr")
	flag.Parse()

	switch opts.from {
	case "json", "markdown", "html":
	default:
		return opts, fmt.Errorf("unknown input format %q", opts.from)
	}
	switch opts.to {
	case "json", "html", "text":
	default:
		return opts, fmt.Errorf("unknown output format %q", opts.to)
	}
	return opts, nil
}

func run(opts options) error {
	data, err := readInput(opts.inPath)
	if err != nil {
		return err
	}

	var doc *document.Document
	switch opts.from {
	case "json":
		doc, err = document.FromJSON(data)
	case "markdown":
		doc, err = markdown.Import(data)
	case "html":
		im := &htmlconv.Importer{}
		if opts.probe {
			im.Images = &media.Prober{}
		}
		doc, err = im.Import(bytes.NewReader(data))
	}
	if err != nil {
		return fmt.Errorf("import %s: %w", opts.from, err)
	}

	var buf bytes.Buffer
	switch opts.to {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
	case "html":
		if err := htmlconv.Export(&buf, doc); err != nil {
			return err
		}
	case "text":
		buf.WriteString(doc.PlainText())
		buf.WriteByte('\n')
	}

	if opts.stats {
		printStats(doc)
	}
	return writeOutput(opts.outPath, buf.Bytes())
}

func printStats(doc *document.Document) {
	blocks, texts := 0, 0
	doc.Walk(func(entry document.NodeEntry) bool {
		switch entry.Node.(type) {
		case *document.Element:
			blocks++
		case *document.Text:
			texts++
		}
		return true
	})
	fp := document.Fingerprint(doc)
	fmt.Fprintf(os.Stderr, "elements: %d, texts: %d, fingerprint: %s\n",
		blocks, texts, hex.EncodeToString(fp[:8]))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
