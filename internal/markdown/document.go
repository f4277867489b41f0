package markdown

import (
	"runtime"
	"sync"
)

// Document is the parse of one message: blocks in source order, each with
// the spans resolved for its text fields.
type Document struct {
	Nodes []Node
}

type Node struct {
	Block  Block
	Lines  LineRange
	Inline []FieldSpans
}

// Field names the string of a block that a FieldSpans entry was resolved from.
type Field int

const (
	FieldText    Field = iota // Paragraph.Text, Heading.Text
	FieldContent              // BlockQuote.Content
	FieldItem                 // list Items[Item]
	FieldHeader               // Table.Headers[Item]
	FieldCell                 // Table.Rows[Row][Item]
)

type FieldSpans struct {
	Field Field
	Row   int
	Item  int
	Spans []Span
}

// SpansFor returns the spans resolved for one field, or nil.
func (n Node) SpansFor(field Field, row, item int) []Span {
	for _, fs := range n.Inline {
		if fs.Field == field && fs.Row == row && fs.Item == item {
			return fs.Spans
		}
	}
	return nil
}

// Options controls which fields Build resolves and with which resolver.
type Options struct {
	Resolver Resolver
	Headings bool
	Cells    bool
}

// DefaultOptions resolves paragraphs, list items and quotes with Resolve.
// Headings and table cells are left unresolved.
func DefaultOptions() Options {
	return Options{Resolver: Resolve}
}

// Build segments text and resolves inline spans with DefaultOptions.
func Build(text string) Document {
	return BuildWith(text, DefaultOptions())
}

func BuildWith(text string, opts Options) Document {
	blocks, ranges := SegmentLines(text)
	if len(blocks) == 0 {
		return Document{}
	}
	nodes := make([]Node, len(blocks))
	for i, block := range blocks {
		nodes[i] = Node{
			Block:  block,
			Lines:  ranges[i],
			Inline: resolveFields(block, opts),
		}
	}
	return Document{Nodes: nodes}
}

func resolveFields(block Block, opts Options) []FieldSpans {
	resolve := opts.Resolver
	if resolve == nil {
		return nil
	}
	var out []FieldSpans
	add := func(field Field, row, item int, text string) {
		if spans := resolve(text); len(spans) > 0 {
			out = append(out, FieldSpans{Field: field, Row: row, Item: item, Spans: spans})
		}
	}

	switch b := block.(type) {
	case Paragraph:
		add(FieldText, 0, 0, b.Text)
	case Heading:
		if opts.Headings {
			add(FieldText, 0, 0, b.Text)
		}
	case BlockQuote:
		add(FieldContent, 0, 0, b.Content)
	case UnorderedList:
		for i, item := range b.Items {
			add(FieldItem, 0, i, item)
		}
	case OrderedList:
		for i, item := range b.Items {
			add(FieldItem, 0, i, item)
		}
	case Table:
		if !opts.Cells {
			return nil
		}
		for i, h := range b.Headers {
			add(FieldHeader, 0, i, h)
		}
		for r, row := range b.Rows {
			for c, cell := range row {
				add(FieldCell, r, c, cell)
			}
		}
	case CodeBlock, HorizontalRule:
	}
	return out
}

const maxBuildWorkers = 8

// BuildAll builds one Document per text on a small worker pool. Messages
// share nothing, so result i is always Build(texts[i]).
func BuildAll(texts []string, workers int) []Document {
	return BuildAllWith(texts, DefaultOptions(), workers)
}

// BuildAllWith is BuildAll with explicit options. workers <= 0 picks one
// worker per CPU, at most eight.
func BuildAllWith(texts []string, opts Options, workers int) []Document {
	docs := make([]Document, len(texts))
	if len(texts) == 0 {
		return docs
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > maxBuildWorkers {
			workers = maxBuildWorkers
		}
	}
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers <= 1 {
		for i, text := range texts {
			docs[i] = BuildWith(text, opts)
		}
		return docs
	}

	jobs := make(chan int, workers*4)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				docs[i] = BuildWith(texts[i], opts)
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return docs
}
