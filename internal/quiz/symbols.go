package quiz

import (
	"errors"
	"fmt"
)

// OptionCount is the number of choices shown for every question.
const OptionCount = 4

var ErrInvalidTable = errors.New("invalid symbol table")

// Entry pairs a kana symbol with its romanized reading.
type Entry struct {
	Symbol  string
	Reading string
}

// SymbolTable is an immutable, ordered symbol to reading mapping
type SymbolTable struct {
	entries []Entry
	index   map[string]int
}

// NewSymbolTable validates entries and builds a table.
// Readings must be unique so that every question has exactly one correct option.
func NewSymbolTable(entries []Entry) (*SymbolTable, error) {
	if len(entries) < OptionCount {
		return nil, fmt.Errorf("%w: need at least %d entries, got %d", ErrInvalidTable, OptionCount, len(entries))
	}

	t := &SymbolTable{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	readings := make(map[string]string, len(entries))

	for i, e := range entries {
		if e.Symbol == "" || e.Reading == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty symbol or reading", ErrInvalidTable, i)
		}
		if _, dup := t.index[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidTable, e.Symbol)
		}
		if other, dup := readings[e.Reading]; dup {
			return nil, fmt.Errorf("%w: symbols %q and %q share reading %q", ErrInvalidTable, other, e.Symbol, e.Reading)
		}
		readings[e.Reading] = e.Symbol
		t.index[e.Symbol] = i
		t.entries[i] = e
	}

	return t, nil
}

// MustSymbolTable is like NewSymbolTable but panics on invalid input.
func MustSymbolTable(entries []Entry) *SymbolTable {
	t, err := NewSymbolTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of symbols in the table
func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table in its original order
func (t *SymbolTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Reading returns the reading for symbol.
func (t *SymbolTable) Reading(symbol string) (string, bool) {
	i, ok := t.index[symbol]
	if !ok {
		return "", false
	}
	return t.entries[i].Reading, true
}

var hiragana = MustSymbolTable([]Entry{
	{"あ", "a"}, {"い", "i"}, {"う", "u"}, {"え", "e"}, {"お", "o"},
	{"か", "ka"}, {"き", "ki"}, {"く", "ku"}, {"け", "ke"}, {"こ", "ko"},
	{"さ", "sa"}, {"し", "shi"}, {"す", "su"}, {"せ", "se"}, {"そ", "so"},
	{"た", "ta"}, {"ち", "chi"}, {"つ", "tsu"}, {"て", "te"}, {"と", "to"},
	{"な", "na"}, {"に", "ni"}, {"ぬ", "nu"}, {"ね", "ne"}, {"の", "no"},
})

// Hiragana returns the built-in table of the first five hiragana rows.
func Hiragana() *SymbolTable {
	return hiragana
}
