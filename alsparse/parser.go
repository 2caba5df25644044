package alsparse

import (
	"strconv"

	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alserr"
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsop"
)

// Parser is a recursive descent parser over the alslex token stream,
// assembling an AlsDocument: one method per grammar production, driven
// by one token of lookahead from the tokenizer.
type Parser struct {
	tz    *alslex.Tokenizer
	cfg   alsconfig.ParserConfig
	depth int
}

// Parse parses a complete ALS document from text.
func Parse(text string, cfg alsconfig.ParserConfig) (*AlsDocument, error) {
	p := &Parser{tz: alslex.New(text), cfg: cfg}
	return p.parseDocument()
}

func (p *Parser) parseDocument() (*AlsDocument, error) {
	doc := &AlsDocument{Version: 1, FormatIndicator: FormatALS}

	tok, err := p.tz.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == alslex.Version {
		if _, err := p.tz.Next(); err != nil {
			return nil, err
		}
		if tok.VersionCtx {
			doc.FormatIndicator = FormatCTX
		} else {
			if tok.VersionNum > SupportedVersion {
				return nil, alserr.VersionMismatch{Expected: SupportedVersion, Found: tok.VersionNum}
			}
			doc.Version = tok.VersionNum
		}
		if err := p.skipOptional(alslex.Newline); err != nil {
			return nil, err
		}
	}

	for {
		tok, err = p.tz.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != alslex.DictHeader {
			break
		}
		if _, err := p.tz.Next(); err != nil {
			return nil, err
		}
		doc.Dictionaries = append(doc.Dictionaries, Dictionary{Name: tok.DictName, Entries: tok.DictValues})
		if err := p.skipOptional(alslex.Newline); err != nil {
			return nil, err
		}
	}

	schema, err := p.parseSchema()
	if err != nil {
		return nil, err
	}
	doc.Schema = schema
	if err := p.skipOptional(alslex.Newline); err != nil {
		return nil, err
	}

	tok, err = p.tz.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == alslex.EOF {
		doc.Streams = make([]ColumnStream, len(schema))
		return doc, nil
	}

	streams, err := p.parseStreamSection()
	if err != nil {
		return nil, err
	}
	if len(streams) != len(schema) {
		return nil, alserr.ColumnMismatch{Schema: len(schema), Data: len(streams)}
	}
	doc.Streams = streams
	return doc, nil
}

func (p *Parser) skipOptional(kind alslex.Kind) error {
	tok, err := p.tz.Peek()
	if err != nil {
		return err
	}
	if tok.Kind == kind {
		_, err := p.tz.Next()
		return err
	}
	return nil
}

func (p *Parser) parseSchema() ([]string, error) {
	var names []string
	seen := map[string]bool{}
	for {
		tok, err := p.tz.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != alslex.SchemaColumn {
			break
		}
		if _, err := p.tz.Next(); err != nil {
			return nil, err
		}
		if seen[tok.Str] {
			return nil, alserr.AlsSyntaxError{Position: tok.Pos, Message: "duplicate schema column name: " + tok.Str}
		}
		seen[tok.Str] = true
		names = append(names, tok.Str)
	}
	if len(names) == 0 {
		pos := p.tz.Position()
		return nil, alserr.AlsSyntaxError{Position: pos, Message: "expected at least one schema column"}
	}
	return names, nil
}

func (p *Parser) parseStreamSection() ([]ColumnStream, error) {
	var streams []ColumnStream
	for {
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		stream, err := p.parseStream()
		if err != nil {
			return nil, err
		}
		streams = append(streams, stream)

		tok, err := p.tz.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == alslex.ColumnSeparator {
			if _, err := p.tz.Next(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return streams, nil
}

// skipNewlines consumes ignorable newlines inside the stream section;
// line breaks there carry no meaning.
func (p *Parser) skipNewlines() error {
	for {
		tok, err := p.tz.Peek()
		if err != nil {
			return err
		}
		if tok.Kind != alslex.Newline {
			return nil
		}
		if _, err := p.tz.Next(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseStream() (ColumnStream, error) {
	var ops ColumnStream
	for {
		tok, err := p.tz.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == alslex.ColumnSeparator || tok.Kind == alslex.EOF {
			return ops, nil
		}
		if tok.Kind == alslex.Newline {
			if _, err := p.tz.Next(); err != nil {
				return nil, err
			}
			continue
		}
		op, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
}

func (p *Parser) parseElement() (alsop.Operator, error) {
	tok, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	switch tok.Kind {
	case alslex.Integer:
		return p.parseIntegerElement()
	case alslex.Float:
		return p.parseFloatElement()
	case alslex.RawValue:
		return p.parseRawElement()
	case alslex.DictRef:
		return p.parseDictRefElement()
	case alslex.OpenParen:
		return p.parseGroupElement()
	default:
		return alsop.Operator{}, alserr.AlsSyntaxError{Position: tok.Pos, Message: "unexpected token " + tok.Kind.String()}
	}
}

func (p *Parser) parseIntegerElement() (alsop.Operator, error) {
	start, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}

	next, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}

	switch next.Kind {
	case alslex.RangeOp:
		op, err := p.parseRangeExpr(start)
		if err != nil {
			return alsop.Operator{}, err
		}
		return p.maybeWrapMultiply(op)
	case alslex.MultiplyOp:
		return p.parseMultiplyExpr(alsop.NewRaw(formatInt(start.Int)))
	case alslex.ToggleOp:
		return p.parseToggleExpr(formatInt(start.Int))
	default:
		return alsop.NewRaw(formatInt(start.Int)), nil
	}
}

func (p *Parser) parseRangeExpr(start alslex.Token) (alsop.Operator, error) {
	if _, err := p.tz.Next(); err != nil { // consume RangeOp
		return alsop.Operator{}, err
	}
	endTok, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}
	if endTok.Kind != alslex.Integer {
		return alsop.Operator{}, alserr.AlsSyntaxError{Position: endTok.Pos, Message: "range end must be an integer"}
	}

	var step int64
	tok, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	if tok.Kind == alslex.StepSeparator {
		if _, err := p.tz.Next(); err != nil {
			return alsop.Operator{}, err
		}
		stepTok, err := p.tz.Next()
		if err != nil {
			return alsop.Operator{}, err
		}
		if stepTok.Kind != alslex.Integer {
			return alsop.Operator{}, alserr.AlsSyntaxError{Position: stepTok.Pos, Message: "range step must be an integer"}
		}
		step = stepTok.Int
	} else {
		diff := endTok.Int - start.Int
		switch {
		case diff > 0:
			step = 1
		case diff < 0:
			step = -1
		default:
			step = 1
		}
	}
	if err := checkRangeBound(start.Int, endTok.Int, step, p.cfg.MaxRangeExpansion); err != nil {
		return alsop.Operator{}, err
	}
	return alsop.NewRange(start.Int, endTok.Int, step), nil
}

// checkRangeBound rejects a range whose expansion would exceed the
// configured cap, before any expansion work happens. Magnitudes are
// computed in uint64 so (end-start)/step cannot itself overflow.
func checkRangeBound(start, end, step int64, maxExpansion int) error {
	rangeErr := alserr.RangeOverflow{Start: start, End: end, Step: step}
	if step == 0 {
		return rangeErr
	}
	if (end > start && step < 0) || (end < start && step > 0) {
		return rangeErr
	}
	var diff uint64
	if end >= start {
		diff = uint64(end) - uint64(start)
	} else {
		diff = uint64(start) - uint64(end)
	}
	mag := uint64(step)
	if step < 0 {
		mag = -mag
	}
	// count is diff/mag + 1; compare without the +1 so the full int64
	// span cannot wrap the addition
	if diff/mag >= uint64(maxExpansion) {
		return rangeErr
	}
	return nil
}

func (p *Parser) parseFloatElement() (alsop.Operator, error) {
	start, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}
	next, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	switch next.Kind {
	case alslex.MultiplyOp:
		return p.parseMultiplyExpr(alsop.NewRaw(formatFloat(start.Flt)))
	case alslex.ToggleOp:
		return p.parseToggleExpr(formatFloat(start.Flt))
	default:
		return alsop.NewRaw(formatFloat(start.Flt)), nil
	}
}

func (p *Parser) parseRawElement() (alsop.Operator, error) {
	start, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}
	next, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	switch next.Kind {
	case alslex.MultiplyOp:
		return p.parseMultiplyExpr(alsop.NewRaw(start.Str))
	case alslex.ToggleOp:
		return p.parseToggleExpr(start.Str)
	default:
		return alsop.NewRaw(start.Str), nil
	}
}

func (p *Parser) parseDictRefElement() (alsop.Operator, error) {
	start, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}
	next, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	switch next.Kind {
	case alslex.MultiplyOp:
		return p.parseMultiplyExpr(alsop.NewDictRef(start.RefIndex))
	case alslex.ToggleOp:
		return alsop.Operator{}, alserr.AlsSyntaxError{Position: next.Pos, Message: "dictionary reference cannot start a toggle"}
	default:
		return alsop.NewDictRef(start.RefIndex), nil
	}
}

func (p *Parser) parseGroupElement() (alsop.Operator, error) {
	openTok, err := p.tz.Next() // consume '('
	if err != nil {
		return alsop.Operator{}, err
	}
	p.depth++
	if p.depth > p.cfg.MaxNestingDepth {
		return alsop.Operator{}, alserr.AlsSyntaxError{Position: openTok.Pos, Message: "operator nesting exceeds maximum depth"}
	}
	inner, err := p.parseElement()
	p.depth--
	if err != nil {
		return alsop.Operator{}, err
	}
	closeTok, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}
	if closeTok.Kind != alslex.CloseParen {
		return alsop.Operator{}, alserr.AlsSyntaxError{Position: closeTok.Pos, Message: "expected ')'"}
	}
	return p.maybeWrapMultiply(inner)
}

// maybeWrapMultiply wraps op in a Multiply if a "*n" suffix follows,
// per the multiply-expr production binding to a whole range-expr or
// group rather than its last subterm.
func (p *Parser) maybeWrapMultiply(op alsop.Operator) (alsop.Operator, error) {
	tok, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	if tok.Kind != alslex.MultiplyOp {
		return op, nil
	}
	return p.parseMultiplyExpr(op)
}

func (p *Parser) parseMultiplyExpr(value alsop.Operator) (alsop.Operator, error) {
	if _, err := p.tz.Next(); err != nil { // consume '*'
		return alsop.Operator{}, err
	}
	countTok, err := p.tz.Next()
	if err != nil {
		return alsop.Operator{}, err
	}
	if countTok.Kind != alslex.Integer || countTok.Int < 0 {
		return alsop.Operator{}, alserr.AlsSyntaxError{Position: countTok.Pos, Message: "multiply count must be a non-negative integer"}
	}
	return alsop.NewMultiply(value, int(countTok.Int)), nil
}

func (p *Parser) parseToggleExpr(first string) (alsop.Operator, error) {
	values := []string{first}
	for {
		tok, err := p.tz.Peek()
		if err != nil {
			return alsop.Operator{}, err
		}
		if tok.Kind != alslex.ToggleOp {
			break
		}
		if _, err := p.tz.Next(); err != nil {
			return alsop.Operator{}, err
		}
		valTok, err := p.tz.Next()
		if err != nil {
			return alsop.Operator{}, err
		}
		val, err := toggleOperandText(valTok)
		if err != nil {
			return alsop.Operator{}, err
		}
		values = append(values, val)
	}

	count := len(values)
	tok, err := p.tz.Peek()
	if err != nil {
		return alsop.Operator{}, err
	}
	if tok.Kind == alslex.MultiplyOp {
		if _, err := p.tz.Next(); err != nil {
			return alsop.Operator{}, err
		}
		countTok, err := p.tz.Next()
		if err != nil {
			return alsop.Operator{}, err
		}
		if countTok.Kind != alslex.Integer || countTok.Int < 0 {
			return alsop.Operator{}, alserr.AlsSyntaxError{Position: countTok.Pos, Message: "toggle count must be a non-negative integer"}
		}
		count = int(countTok.Int)
	}
	return alsop.NewToggle(values, count), nil
}

func toggleOperandText(tok alslex.Token) (string, error) {
	switch tok.Kind {
	case alslex.Integer:
		return formatInt(tok.Int), nil
	case alslex.Float:
		return formatFloat(tok.Flt), nil
	case alslex.RawValue:
		return tok.Str, nil
	default:
		return "", alserr.AlsSyntaxError{Position: tok.Pos, Message: "toggle operand must be a literal value"}
	}
}

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
