package markdown

// Block is one structural unit of a parsed message. The set of variants is
// closed; consumers are expected to type-switch over all of them.
type Block interface {
	Kind() BlockKind
	block()
}

// BlockKind identifies a Block variant.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindCodeBlock
	KindTable
	KindUnorderedList
	KindOrderedList
	KindBlockQuote
	KindHorizontalRule
)

var blockKindNames = [...]string{
	KindParagraph:      "paragraph",
	KindHeading:        "heading",
	KindCodeBlock:      "code",
	KindTable:          "table",
	KindUnorderedList:  "ul",
	KindOrderedList:    "ol",
	KindBlockQuote:     "quote",
	KindHorizontalRule: "rule",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "unknown"
	}
	return blockKindNames[k]
}

type Heading struct {
	Level int
	Text  string
}

func (Heading) Kind() BlockKind { return KindHeading }
func (Heading) block()          {}

type Paragraph struct {
	Text string
}

func (Paragraph) Kind() BlockKind { return KindParagraph }
func (Paragraph) block()          {}

type CodeBlock struct {
	Language string
	Code     string
}

func (CodeBlock) Kind() BlockKind { return KindCodeBlock }
func (CodeBlock) block()          {}

// Table always has len(Align) == len(Headers) and every row the same width.
type Table struct {
	Headers []string
	Rows    [][]string
	Align   []Alignment
}

func (Table) Kind() BlockKind { return KindTable }
func (Table) block()          {}

type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

type UnorderedList struct {
	Items []string
}

func (UnorderedList) Kind() BlockKind { return KindUnorderedList }
func (UnorderedList) block()          {}

// OrderedList items are numbered 1..N at render time; source digits are dropped.
type OrderedList struct {
	Items []string
}

func (OrderedList) Kind() BlockKind { return KindOrderedList }
func (OrderedList) block()          {}

type BlockQuote struct {
	Content string
}

func (BlockQuote) Kind() BlockKind { return KindBlockQuote }
func (BlockQuote) block()          {}

type HorizontalRule struct{}

func (HorizontalRule) Kind() BlockKind { return KindHorizontalRule }
func (HorizontalRule) block()          {}

// LineRange is the half-open range of normalized source lines consumed by a block.
type LineRange struct {
	Start int
	End   int
}

func (r LineRange) Len() int { return r.End - r.Start }
