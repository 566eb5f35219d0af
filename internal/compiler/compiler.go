// Package compiler is the entry point later stages hang off. Today compiling
// a CLite program means parsing it.
package compiler

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/JC-LL/clite/internal/ast"
	"github.com/JC-LL/clite/internal/compiler_errors"
	"github.com/JC-LL/clite/internal/lexer"
	"github.com/JC-LL/clite/internal/parser"
	"github.com/JC-LL/clite/internal/trace"
)

type Options struct {
	Logger *log.Logger
	Tracer trace.Tracer
	// Listing prints the numbered source through Tracer before parsing.
	Listing bool
	Preview int
}

type Compiler struct {
	logger  *log.Logger
	tracer  trace.Tracer
	listing bool
	preview int
}

func New(opts Options) *Compiler {
	c := &Compiler{
		logger:  opts.Logger,
		tracer:  opts.Tracer,
		listing: opts.Listing,
		preview: opts.Preview,
	}

	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.preview <= 0 {
		c.preview = parser.DefaultPreview
	}

	return c
}

func (c *Compiler) Compile(src string) (*ast.Program, error) {
	if c.listing && c.tracer != nil {
		c.tracer.Listing(src)
	}

	eh := compiler_errors.NewErrorHandler()

	l := lexer.NewLexer(src, eh)
	if c.tracer != nil {
		l.SetObserver(func(_ lexer.TokenKind, text string) {
			c.tracer.Lexeme(text)
		})
	}

	tokens, err := l.Tokenize()
	if err != nil {
		c.logger.Error("tokenize failed", "err", err)
		return nil, err
	}
	c.logger.Debug("tokenized", "tokens", len(tokens))

	opts := []parser.Option{parser.WithPreview(c.preview)}
	if c.tracer != nil {
		opts = append(opts, parser.WithTracer(c.tracer))
	}

	program, err := parser.NewParser(lexer.NewTokenScanner(tokens), eh, opts...).Parse()
	if err != nil {
		c.logger.Error("parse failed", "err", err)
		return nil, err
	}

	c.logger.Info("program parsed successfully",
		"declarations", len(program.Declarations),
		"statements", len(program.Stmts))

	return program, nil
}

// Compile parses src with no tracing or logging.
func Compile(src string) (*ast.Program, error) {
	return parser.Parse(src)
}
