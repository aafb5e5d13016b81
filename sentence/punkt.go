//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package sentence

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// Punkt splits English text with the Punkt model shipped with
// github.com/neurosnap/sentences, with the standalone-period handling of
// NLTK's sent_tokenize. The model is loaded on first use.
type Punkt struct {
	once sync.Once
	tok  *sentences.DefaultSentenceTokenizer
	err  error
	load func() (*sentences.DefaultSentenceTokenizer, error)
}

// NewPunkt creates an English Punkt splitter.
func NewPunkt() *Punkt {
	return &Punkt{load: loadEnglish}
}

func loadEnglish() (*sentences.DefaultSentenceTokenizer, error) {
	b, err := sentencesdata.Asset("data/english.json")
	if err != nil {
		return nil, fmt.Errorf("load english punkt data: %w", err)
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, fmt.Errorf("parse english punkt data: %w", err)
	}
	return sentences.NewSentenceTokenizer(training), nil
}

// Split returns the sentences of text.
func (p *Punkt) Split(text string) ([]string, error) {
	p.once.Do(func() {
		p.tok, p.err = p.load()
	})
	if p.err != nil {
		return nil, p.err
	}
	if p.tok == nil {
		return nil, fmt.Errorf("english sentence tokenizer is nil")
	}

	raw := p.tok.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		out = append(out, splitLeadingPeriods(strings.TrimSpace(sent.Text))...)
	}
	return dropEmpty(out), nil
}

// splitLeadingPeriods emits each leading standalone "." as its own sentence,
// as NLTK does for ". ." sequences.
func splitLeadingPeriods(s string) []string {
	var out []string
	for {
		s = strings.TrimLeft(s, asciiSpace)
		if s == "" || s[0] != '.' {
			break
		}
		if len(s) > 1 && !strings.ContainsRune(asciiSpace, rune(s[1])) {
			break
		}
		out = append(out, ".")
		s = s[1:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

const asciiSpace = " \t\n\r\v\f"
