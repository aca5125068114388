package internal

// parser assembles the AST from the lexer's token stream. Classes are
// resolved statically: instantiation sites refer to previously defined
// classes through the parser's class table.
type parser struct {
	lex     *lexer
	state   *interpreterState
	classes map[string]*pyriteClass
}

func newParser(lex *lexer, state *interpreterState) *parser {
	return &parser{
		lex:     lex,
		state:   state,
		classes: make(map[string]*pyriteClass),
	}
}

// parse consumes tokens until Eof. The first error aborts parsing; it is
// left on the interpreter state.
func (p *parser) parse() {
	defer func() {
		if r := recover(); r != nil {
			if _, isErr := r.(error); !isErr {
				panic(r)
			}
		}
	}()
	stmts := make([]stmt, 0)
	for !p.check(tkEOF) {
		stmts = append(stmts, p.statement())
	}
	p.state.stmts = stmts
}

func (p *parser) statement() stmt {
	switch {
	case p.match(tkClass):
		return p.classDef()
	case p.match(tkIf):
		return p.ifStmt()
	case p.match(tkPrint):
		return p.printStatement()
	case p.match(tkReturn):
		return p.returnStatement()
	}
	return p.simpleStatement()
}

func (p *parser) classDef() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var parent *pyriteClass
	if p.matchChar('(') {
		parentName := p.consume(tkIdentifier, errExpectedIdentifier)
		var ok bool
		if parent, ok = p.classes[parentName.lexeme]; !ok {
			p.state.fatalError(errUnknownClass, parentName.line)
		}
		p.consumeChar(')', errUnclosedParen)
	}

	p.consumeChar(':', errExpectedColon)
	p.consume(tkNewline, errExpectedNewline)
	p.consume(tkIndent, errExpectedIndent)

	// Registered before the body parses so methods can instantiate their
	// own class.
	cls := &pyriteClass{name: name.lexeme, parent: parent}
	p.classes[cls.name] = cls

	for !p.check(tkDedent) && !p.check(tkEOF) {
		p.consume(tkDef, errExpectedDef)
		cls.methods = append(cls.methods, p.methodDef())
	}
	p.consume(tkDedent, errExpectedDedent)

	return &classDefinition{cls: cls}
}

func (p *parser) methodDef() *method {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	p.consumeChar('(', errExpectedParen)
	var params []string
	if !p.checkChar(')') {
		for {
			params = append(params, p.consume(tkIdentifier, errExpectedIdentifier).lexeme)
			if !p.matchChar(',') {
				break
			}
		}
	}
	p.consumeChar(')', errUnclosedParen)

	return &method{
		name:   name.lexeme,
		params: params,
		body:   &methodBody{body: p.suite()},
	}
}

// suite parses ":" NEWLINE INDENT statement+ DEDENT into a compound.
func (p *parser) suite() stmt {
	p.consumeChar(':', errExpectedColon)
	p.consume(tkNewline, errExpectedNewline)
	p.consume(tkIndent, errExpectedIndent)
	stmts := make([]stmt, 0)
	for !p.check(tkDedent) && !p.check(tkEOF) {
		stmts = append(stmts, p.statement())
	}
	p.consume(tkDedent, errExpectedDedent)
	return &compound{stmts: stmts}
}

func (p *parser) ifStmt() stmt {
	condition := p.expression()
	thenBody := p.suite()
	var elseBody stmt
	if p.match(tkElse) {
		elseBody = p.suite()
	}
	return &ifElse{condition: condition, thenBody: thenBody, elseBody: elseBody}
}

func (p *parser) printStatement() stmt {
	var args []stmt
	if !p.check(tkNewline) {
		args = append(args, p.expression())
		for p.matchChar(',') {
			args = append(args, p.expression())
		}
	}
	p.consume(tkNewline, errExpectedNewline)
	return &printStmt{args: args}
}

func (p *parser) returnStatement() stmt {
	var value stmt = &noneStmt{}
	if !p.check(tkNewline) {
		value = p.expression()
	}
	p.consume(tkNewline, errExpectedNewline)
	return &returnStmt{value: value}
}

// simpleStatement is either an assignment (plain or field) or a bare
// expression statement.
func (p *parser) simpleStatement() stmt {
	first := p.peek()
	expr := p.expression()
	if p.matchChar('=') {
		target, isVar := expr.(*variableValue)
		if !isVar {
			p.state.fatalError(errInvalidTarget, first.line)
		}
		rhs := p.expression()
		p.consume(tkNewline, errExpectedNewline)
		if len(target.ids) == 1 {
			return &assignment{name: target.ids[0], rhs: rhs}
		}
		return &fieldAssignment{
			object: &variableValue{ids: target.ids[:len(target.ids)-1], tk: target.tk},
			field:  target.ids[len(target.ids)-1],
			rhs:    rhs,
		}
	}
	p.consume(tkNewline, errExpectedNewline)
	return expr
}

func (p *parser) expression() stmt {
	return p.or()
}

func (p *parser) or() stmt {
	left := p.and()
	for p.match(tkOr) {
		left = &orStmt{lhs: left, rhs: p.and()}
	}
	return left
}

func (p *parser) and() stmt {
	left := p.not()
	for p.match(tkAnd) {
		left = &andStmt{lhs: left, rhs: p.not()}
	}
	return left
}

func (p *parser) not() stmt {
	if p.match(tkNot) {
		return &notStmt{arg: p.not()}
	}
	return p.comparison()
}

func (p *parser) comparison() stmt {
	left := p.addition()
	tk := p.peek()
	var op comparator
	switch {
	case p.match(tkEq):
		op = cmpEq
	case p.match(tkNotEq):
		op = cmpNotEq
	case p.match(tkLessOrEq):
		op = cmpLessOrEq
	case p.match(tkGreaterOrEq):
		op = cmpGreaterOrEq
	case p.matchChar('<'):
		op = cmpLess
	case p.matchChar('>'):
		op = cmpGreater
	default:
		return left
	}
	return &comparison{op: op, lhs: left, rhs: p.addition(), tk: &tk}
}

func (p *parser) addition() stmt {
	left := p.mult()
	for p.checkChar('+') || p.checkChar('-') {
		tk := p.advance()
		right := p.mult()
		if tk.literal.(byte) == '+' {
			left = &add{lhs: left, rhs: right, tk: &tk}
		} else {
			left = &sub{lhs: left, rhs: right, tk: &tk}
		}
	}
	return left
}

func (p *parser) mult() stmt {
	left := p.primary()
	for p.checkChar('*') || p.checkChar('/') {
		tk := p.advance()
		right := p.primary()
		if tk.literal.(byte) == '*' {
			left = &mult{lhs: left, rhs: right, tk: &tk}
		} else {
			left = &div{lhs: left, rhs: right, tk: &tk}
		}
	}
	return left
}

func (p *parser) primary() stmt {
	tk := p.peek()
	switch {
	case p.match(tkNumber):
		return &literal{value: own(pyriteNumber(tk.literal.(int64)))}
	case p.match(tkString):
		return &literal{value: own(pyriteString(tk.literal.(string)))}
	case p.match(tkTrue):
		return &literal{value: own(pyriteBool(true))}
	case p.match(tkFalse):
		return &literal{value: own(pyriteBool(false))}
	case p.match(tkNone):
		return &noneStmt{}
	case p.matchChar('('):
		expr := p.expression()
		p.consumeChar(')', errUnclosedParen)
		return expr
	case p.match(tkIdentifier):
		return p.identifierExpr(tk)
	}
	p.state.fatalError(errUndefinedExpr, tk.line)
	return nil
}

// identifierExpr parses everything a leading identifier can start: the
// str(...) conversion, a dotted variable access, a method call, or a class
// instantiation.
func (p *parser) identifierExpr(first token) stmt {
	if first.lexeme == "str" && p.matchChar('(') {
		arg := p.expression()
		p.consumeChar(')', errUnclosedParen)
		return &stringify{arg: arg}
	}

	ids := []string{first.lexeme}
	for p.matchChar('.') {
		ids = append(ids, p.consume(tkIdentifier, errExpectedIdentifier).lexeme)
	}

	if p.matchChar('(') {
		args := p.arguments()
		if len(ids) == 1 {
			cls, ok := p.classes[ids[0]]
			if !ok {
				p.state.fatalError(errUnknownClass, first.line)
			}
			return &newInstance{cls: cls, args: args}
		}
		return &methodCall{
			object: &variableValue{ids: ids[:len(ids)-1], tk: &first},
			method: ids[len(ids)-1],
			args:   args,
			tk:     &first,
		}
	}

	return &variableValue{ids: ids, tk: &first}
}

func (p *parser) arguments() []stmt {
	var args []stmt
	if !p.checkChar(')') {
		for {
			args = append(args, p.expression())
			if !p.matchChar(',') {
				break
			}
		}
	}
	p.consumeChar(')', errUnclosedParen)
	return args
}

func (p *parser) peek() token {
	return p.lex.currentToken()
}

func (p *parser) advance() token {
	tk := p.lex.currentToken()
	p.lex.nextToken()
	return tk
}

func (p *parser) check(typ tokenType) bool {
	return p.peek().typ == typ
}

func (p *parser) checkChar(c byte) bool {
	tk := p.peek()
	return tk.typ == tkChar && tk.literal.(byte) == c
}

func (p *parser) match(typ tokenType) bool {
	if !p.check(typ) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) matchChar(c byte) bool {
	if !p.checkChar(c) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) consume(typ tokenType, err error) token {
	if !p.check(typ) {
		p.state.fatalError(err, p.peek().line)
	}
	return p.advance()
}

func (p *parser) consumeChar(c byte, err error) token {
	if !p.checkChar(c) {
		p.state.fatalError(err, p.peek().line)
	}
	return p.advance()
}
