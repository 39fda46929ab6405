package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/lcalc/scanner"
	"github.com/npillmayer/lcalc/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "+", "-", "*", "/", "="}

// The calculator has no keywords
var keywords = []string{}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["NUM"] = scanner.Int
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the lexmachine lexer for the calculator language. The DFA is
// compiled on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = newLexer()
	})
	return lexer, lexerErr
}

func newLexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
		lexer.Add([]byte(`[0-9]+`), makeToken("NUM"))
		lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
	}
	return lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}
