package parser

// Program is the output of S1+S2: a read-only statement list together
// with the label and constant tables S2 populated while walking it. S3
// consumes a Program without ever re-deriving addresses from label
// positions, per the address-agreement invariant.
type Program struct {
	Filename  string
	Statements []*Statement
	Labels    *SymbolTable
	Constants *ConstantTable
}

// Parser drives S1 (Lex) followed by S2 (Layout) over one source file.
type Parser struct {
	filename string
	source   string
}

// NewParser creates a parser over source, tagged with filename for
// position reporting.
func NewParser(source, filename string) *Parser {
	return &Parser{filename: filename, source: source}
}

// Parse runs the lexer and the layout pass and returns the resulting
// Program. Any MalformedLine, UnknownMnemonic, or duplicate-label
// failure aborts immediately: spec.md §7 treats all of these as fatal.
func (p *Parser) Parse() (*Program, error) {
	lexer := NewLexer(p.source, p.filename)
	statements, err := lexer.Lex()
	if err != nil {
		return nil, err
	}

	program := &Program{
		Filename:   p.filename,
		Statements: statements,
		Labels:     NewSymbolTable(),
		Constants:  NewConstantTable(),
	}

	if err := Layout(program); err != nil {
		return nil, err
	}

	return program, nil
}
