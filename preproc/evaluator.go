// Copyright (c) 2026, The Inkfold Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preproc

import (
	"strconv"
	"strings"

	"github.com/inkfold/inkfold/charset"
)

var (
	exprWord       = charset.New(charset.AlphaNum, "._", true)
	exprWordStart  = charset.New(charset.Alpha, "_", true)
	negationOp     = charset.New(charset.None, "!", false)
	arithmeticOp   = charset.New(charset.None, "+-/*%", false)
	relOp          = charset.New(charset.None, "=!<>", false)
	logicalOp      = charset.New(charset.None, "|&", false)
)

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

// Tokenize splits a #if/#elif condition (or a macro's replacement text)
// into the flat token stream EvaluateTokens reduces. Identifiers and number
// literals share one token class, just as LexCPP.cxx's Tokenize does (both
// fall under setWord); the evaluator tells them apart later by checking
// whether the token starts with a letter or underscore.
func Tokenize(expr string) []string {
	var tokens []string
	i := 0
	n := len(expr)
	for i < n {
		c := expr[i]
		start := i
		switch {
		case exprWord.Contains(c):
			for i < n && exprWord.Contains(expr[i]) {
				i++
			}
		case isSpaceOrTab(c):
			for i < n && isSpaceOrTab(expr[i]) {
				i++
			}
		case relOp.Contains(c):
			i++
			if i < n && relOp.Contains(expr[i]) {
				i++
			}
		case logicalOp.Contains(c):
			i++
			if i < n && logicalOp.Contains(expr[i]) {
				i++
			}
		default:
			i++
		}
		tokens = append(tokens, expr[start:i])
	}
	return tokens
}

func onlySpaceOrTab(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpaceOrTab(s[i]) {
			return false
		}
	}
	return true
}

func atoiOr0(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func splitArgs(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, ",")
}

func findBracketPair(tokens []string) (start, end int) {
	start = -1
	for i, t := range tokens {
		if t == "(" {
			start = i
			break
		}
	}
	if start == -1 {
		return -1, -1
	}
	nest := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i] {
		case "(":
			nest++
		case ")":
			nest--
			if nest == 0 {
				return start, i
			}
		}
	}
	return -1, -1
}

// maxMacroIterations bounds macro-expansion passes so a self-referential
// macro (#define A A) cannot hang the evaluator.
const maxMacroIterations = 100

// EvaluateTokens reduces a token stream to a single "0"/"1"/numeric token,
// in place, following LexCPP.cxx's EvaluateTokens pass order: strip
// whitespace, resolve `defined`, expand macros, recurse into bracketed
// subexpressions, apply unary `!`, then fold arithmetic, relational, and
// logical operators left to right in that class order (intentionally not
// full C operator precedence, per spec.md §9).
func EvaluateTokens(tokens []string, defs *Table) []string {
	tokens = stripSpace(tokens)
	tokens = resolveDefined(tokens, defs)
	tokens = expandMacros(tokens, defs)
	tokens = reduceBrackets(tokens, defs)
	tokens = applyNegation(tokens)
	tokens = foldByPrecedence(tokens)
	return tokens
}

func stripSpace(tokens []string) []string {
	out := tokens[:0:0]
	for _, t := range tokens {
		if !onlySpaceOrTab(t) {
			out = append(out, t)
		}
	}
	return out
}

func resolveDefined(tokens []string, defs *Table) []string {
	for i := 0; i+1 < len(tokens); {
		if tokens[i] != "defined" {
			i++
			continue
		}
		val := "0"
		if tokens[i+1] == "(" {
			switch {
			case i+2 < len(tokens) && tokens[i+2] == ")":
				// defined()
				tokens = append(tokens[:i+1], tokens[i+3:]...)
			case i+3 < len(tokens) && tokens[i+3] == ")":
				// defined(identifier)
				if defs.Defined(tokens[i+2]) {
					val = "1"
				}
				tokens = append(tokens[:i+1], tokens[i+4:]...)
			default:
				// spurious '(' with no close; drop it so the result leans false
				tokens = append(tokens[:i+1], tokens[i+2:]...)
			}
		} else {
			if defs.Defined(tokens[i+1]) {
				val = "1"
			}
			tokens = append(tokens[:i+1], tokens[i+2:]...)
		}
		tokens[i] = val
	}
	return tokens
}

func expandMacros(tokens []string, defs *Table) []string {
	iterations := 0
	for i := 0; i < len(tokens) && iterations < maxMacroIterations; {
		iterations++
		if len(tokens[i]) == 0 || !exprWordStart.Contains(tokens[i][0]) {
			i++
			continue
		}
		sym, ok := defs.Lookup(tokens[i])
		if !ok {
			tokens = append(tokens[:i], tokens[i+1:]...)
			continue
		}
		macroTokens := Tokenize(sym.Value)
		if sym.IsMacro() {
			if i+1 >= len(tokens) || tokens[i+1] != "(" {
				i++
				continue
			}
			argNames := splitArgs(sym.Arguments)
			arguments := make(map[string]string, len(argNames))
			arg, tok := 0, i+2
			for tok < len(tokens) && arg < len(argNames) && tokens[tok] != ")" {
				if tokens[tok] != "," {
					arguments[argNames[arg]] = tokens[tok]
					arg++
				}
				tok++
			}
			end := tok + 1
			if end > len(tokens) {
				end = len(tokens)
			}
			tokens = append(tokens[:i], tokens[end:]...)
			macroTokens = stripSpace(macroTokens)
			for im := range macroTokens {
				if len(macroTokens[im]) > 0 && exprWordStart.Contains(macroTokens[im][0]) {
					if v, ok := arguments[macroTokens[im]]; ok {
						macroTokens[im] = v
					}
				}
			}
			tokens = insertAt(tokens, i, macroTokens)
		} else {
			tokens = append(tokens[:i], tokens[i+1:]...)
			tokens = insertAt(tokens, i, macroTokens)
		}
	}
	return tokens
}

func insertAt(tokens []string, i int, insert []string) []string {
	out := make([]string, 0, len(tokens)+len(insert))
	out = append(out, tokens[:i]...)
	out = append(out, insert...)
	out = append(out, tokens[i:]...)
	return out
}

func reduceBrackets(tokens []string, defs *Table) []string {
	for {
		start, end := findBracketPair(tokens)
		if start == -1 {
			break
		}
		inner := append([]string{}, tokens[start+1:end]...)
		inner = EvaluateTokens(inner, defs)
		merged := make([]string, 0, len(tokens)-(end-start+1)+len(inner))
		merged = append(merged, tokens[:start]...)
		merged = append(merged, inner...)
		merged = append(merged, tokens[end+1:]...)
		tokens = merged
	}
	return tokens
}

func applyNegation(tokens []string) []string {
	for j := 0; j+1 < len(tokens); {
		if len(tokens[j]) == 0 || !negationOp.Contains(tokens[j][0]) {
			j++
			continue
		}
		isTrue := atoiOr0(tokens[j+1]) != 0
		if tokens[j] == "!" {
			isTrue = !isTrue
		}
		result := "0"
		if isTrue {
			result = "1"
		}
		tokens = append(append(append([]string{}, tokens[:j]...), result), tokens[j+2:]...)
	}
	return tokens
}

const (
	precArithmetic = iota
	precRelative
	precLogical
)

func foldByPrecedence(tokens []string) []string {
	for prec := precArithmetic; prec <= precLogical; prec++ {
		for k := 0; k+2 < len(tokens); {
			op := tokens[k+1]
			matches := len(op) > 0 && ((prec == precArithmetic && arithmeticOp.Contains(op[0])) ||
				(prec == precRelative && relOp.Contains(op[0])) ||
				(prec == precLogical && logicalOp.Contains(op[0])))
			if !matches {
				k++
				continue
			}
			a, b := atoiOr0(tokens[k]), atoiOr0(tokens[k+2])
			result := strconv.Itoa(applyOp(op, a, b))
			tokens = append(append(append([]string{}, tokens[:k]...), result), tokens[k+3:]...)
		}
	}
	return tokens
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func applyOp(op string, a, b int) int {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		if b == 0 {
			b = 1
		}
		return a / b
	case "%":
		if b == 0 {
			b = 1
		}
		return a % b
	case "<":
		return boolInt(a < b)
	case "<=":
		return boolInt(a <= b)
	case ">":
		return boolInt(a > b)
	case ">=":
		return boolInt(a >= b)
	case "==":
		return boolInt(a == b)
	case "!=":
		return boolInt(a != b)
	case "||":
		return boolInt(a != 0 || b != 0)
	case "&&":
		return boolInt(a != 0 && b != 0)
	default:
		return 0
	}
}

// EvaluateExpression tokenizes and reduces expr, then reports whether the
// result is truthy. An empty result, or a single "" or "0" token, is false;
// everything else (including an unreduced leftover token stream — the
// evaluator does not guarantee full reduction of a malformed expression) is
// true, matching LexCPP.cxx's EvaluateExpression.
func EvaluateExpression(expr string, defs *Table) bool {
	tokens := Tokenize(expr)
	tokens = EvaluateTokens(tokens, defs)
	isFalse := len(tokens) == 0 || (len(tokens) == 1 && (tokens[0] == "" || tokens[0] == "0"))
	return !isFalse
}
