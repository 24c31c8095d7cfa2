package quiz

// Question is one multiple-choice prompt. A new question replaces the
// previous one, it is never modified in place.
type Question struct {
	Symbol  string   `json:"symbol"`
	Options []string `json:"options"`
}

// NewQuestion picks a symbol uniformly at random and builds its options:
// three distinct readings of other symbols plus the correct one, shuffled.
func NewQuestion(table *SymbolTable, rnd Random) Question {
	n := table.Len()
	pick := rnd.Intn(n)
	answer := table.entries[pick]

	pool := make([]string, 0, n-1)
	for i, e := range table.entries {
		if i != pick {
			pool = append(pool, e.Reading)
		}
	}

	// partial Fisher-Yates: the first OptionCount-1 slots become the sample
	for i := 0; i < OptionCount-1; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	options := make([]string, 0, OptionCount)
	options = append(options, pool[:OptionCount-1]...)
	options = append(options, answer.Reading)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{Symbol: answer.Symbol, Options: options}
}

// HasOption reports whether reading is one of the question's options
func (q Question) HasOption(reading string) bool {
	for _, o := range q.Options {
		if o == reading {
			return true
		}
	}
	return false
}
