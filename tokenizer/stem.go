//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import (
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// Stemmer reduces a lowercase ASCII word to its stem.
type Stemmer func(word string) string

var (
	// NLTKPorter is Porter stemming in NLTK_EXTENSIONS mode, the variant
	// google-research/rouge scores with.
	NLTKPorter Stemmer = stemNLTK
	// ClassicPorter is the 1980 Porter algorithm without NLTK's departures.
	ClassicPorter Stemmer = porterstemmer.StemString
)

// stemNLTK applies the irregular-form table, then steps 1a through 5b.
func stemNLTK(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	if base, ok := irregularForms[word]; ok {
		return base
	}
	for _, step := range nltkSteps {
		word = step(word)
	}
	return word
}

var nltkSteps = []func(string) string{
	step1a, step1b, step1c, step2, step3, step4, step5a, step5b,
}

// irregularForms short-circuit the suffix rules.
var irregularForms = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// isConsonant treats y as a consonant only at the start or after a vowel.
func isConsonant(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !isConsonant(w, i-1)
	}
	return true
}

func hasVowel(w string) bool {
	for i := 0; i < len(w); i++ {
		if !isConsonant(w, i) {
			return true
		}
	}
	return false
}

// measure counts the vowel-to-consonant transitions in w, the m in [C](VC)^m[V].
func measure(w string) int {
	m := 0
	afterVowel := false
	for i := 0; i < len(w); i++ {
		if !isConsonant(w, i) {
			afterVowel = true
			continue
		}
		if afterVowel {
			m++
		}
		afterVowel = false
	}
	return m
}

func endsDoubleConsonant(w string) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && isConsonant(w, n-1)
}

// endsCVC also accepts a two letter vowel-consonant word, as NLTK does.
func endsCVC(w string) bool {
	n := len(w)
	if n == 2 {
		return !isConsonant(w, 0) && isConsonant(w, 1)
	}
	if n < 3 {
		return false
	}
	switch w[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return isConsonant(w, n-3) && !isConsonant(w, n-2) && isConsonant(w, n-1)
}

// suffixRule rewrites suffix to repl when cond holds for the remaining stem.
// A nil cond falls back to the step's shared condition.
type suffixRule struct {
	suffix string
	repl   string
	cond   func(stem string) bool
}

// rewrite applies the first rule whose suffix w ends with. A matching rule
// whose condition fails leaves w unchanged and stops the search.
func rewrite(w string, cond func(string) bool, rules []suffixRule) string {
	for _, r := range rules {
		stem, ok := strings.CutSuffix(w, r.suffix)
		if !ok {
			continue
		}
		check := cond
		if r.cond != nil {
			check = r.cond
		}
		if check == nil || check(stem) {
			return stem + r.repl
		}
		return w
	}
	return w
}

func positiveMeasure(stem string) bool { return measure(stem) > 0 }

func measureAboveOne(stem string) bool { return measure(stem) > 1 }

var step1aRules = []suffixRule{
	{suffix: "sses", repl: "ss"},
	{suffix: "ies", repl: "i"},
	{suffix: "ss", repl: "ss"},
	{suffix: "s"},
}

func step1a(w string) string {
	// dies -> die, not di.
	if len(w) == 4 && strings.HasSuffix(w, "ies") {
		return w[:1] + "ie"
	}
	return rewrite(w, nil, step1aRules)
}

func step1b(w string) string {
	if stem, ok := strings.CutSuffix(w, "ied"); ok {
		if len(w) == 4 {
			return stem + "ie"
		}
		return stem + "i"
	}
	if stem, ok := strings.CutSuffix(w, "eed"); ok {
		if positiveMeasure(stem) {
			return stem + "ee"
		}
		return w
	}

	stem, ok := strings.CutSuffix(w, "ed")
	if !ok {
		stem, ok = strings.CutSuffix(w, "ing")
	}
	if !ok || !hasVowel(stem) {
		return w
	}

	switch {
	case strings.HasSuffix(stem, "at"), strings.HasSuffix(stem, "bl"), strings.HasSuffix(stem, "iz"):
		return stem + "e"
	case endsDoubleConsonant(stem):
		switch stem[len(stem)-1] {
		case 'l', 's', 'z':
			return stem
		}
		return stem[:len(stem)-1]
	case measure(stem) == 1 && endsCVC(stem):
		return stem + "e"
	}
	return stem
}

// step1c keeps y after a vowel (enjoy) and after a lone first letter (by).
func step1c(w string) string {
	stem, ok := strings.CutSuffix(w, "y")
	if ok && len(stem) > 1 && isConsonant(stem, len(stem)-1) {
		return stem + "i"
	}
	return w
}

var step2Rules = []suffixRule{
	{suffix: "ational", repl: "ate"},
	{suffix: "tional", repl: "tion"},
	{suffix: "enci", repl: "ence"},
	{suffix: "anci", repl: "ance"},
	{suffix: "izer", repl: "ize"},
	{suffix: "bli", repl: "ble"},
	{suffix: "alli", repl: "al"},
	{suffix: "entli", repl: "ent"},
	{suffix: "eli", repl: "e"},
	{suffix: "ousli", repl: "ous"},
	{suffix: "ization", repl: "ize"},
	{suffix: "ation", repl: "ate"},
	{suffix: "ator", repl: "ate"},
	{suffix: "alism", repl: "al"},
	{suffix: "iveness", repl: "ive"},
	{suffix: "fulness", repl: "ful"},
	{suffix: "ousness", repl: "ous"},
	{suffix: "aliti", repl: "al"},
	{suffix: "iviti", repl: "ive"},
	{suffix: "biliti", repl: "ble"},
	{suffix: "fulli", repl: "ful"},
	// The measure is taken over the stem with its l kept.
	{suffix: "logi", repl: "log", cond: func(stem string) bool { return positiveMeasure(stem + "l") }},
}

func step2(w string) string {
	if stem, ok := strings.CutSuffix(w, "alli"); ok && positiveMeasure(stem) {
		return step2(stem + "al")
	}
	return rewrite(w, positiveMeasure, step2Rules)
}

var step3Rules = []suffixRule{
	{suffix: "icate", repl: "ic"},
	{suffix: "ative"},
	{suffix: "alize", repl: "al"},
	{suffix: "iciti", repl: "ic"},
	{suffix: "ical", repl: "ic"},
	{suffix: "ful"},
	{suffix: "ness"},
}

func step3(w string) string {
	return rewrite(w, positiveMeasure, step3Rules)
}

var step4Rules = []suffixRule{
	{suffix: "al"},
	{suffix: "ance"},
	{suffix: "ence"},
	{suffix: "er"},
	{suffix: "ic"},
	{suffix: "able"},
	{suffix: "ible"},
	{suffix: "ant"},
	{suffix: "ement"},
	{suffix: "ment"},
	{suffix: "ent"},
	{suffix: "ion", cond: func(stem string) bool {
		return measureAboveOne(stem) && (strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "t"))
	}},
	{suffix: "ou"},
	{suffix: "ism"},
	{suffix: "ate"},
	{suffix: "iti"},
	{suffix: "ous"},
	{suffix: "ive"},
	{suffix: "ize"},
}

func step4(w string) string {
	return rewrite(w, measureAboveOne, step4Rules)
}

func step5a(w string) string {
	stem, ok := strings.CutSuffix(w, "e")
	if !ok {
		return w
	}
	if m := measure(stem); m > 1 || (m == 1 && !endsCVC(stem)) {
		return stem
	}
	return w
}

func step5b(w string) string {
	if strings.HasSuffix(w, "ll") && measureAboveOne(w[:len(w)-1]) {
		return w[:len(w)-1]
	}
	return w
}
