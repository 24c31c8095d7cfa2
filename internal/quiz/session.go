package quiz

// Session bundles a State with the table and random source it is played
// with. It is not safe for concurrent use.
type Session struct {
	state *State
	table *SymbolTable
	rnd   Random
}

// NewSession starts an empty session
func NewSession(table *SymbolTable, rnd Random) *Session {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &Session{state: NewState(), table: table, rnd: rnd}
}

// Draw replaces the current question
func (s *Session) Draw() Question {
	return Draw(s.state, s.table, s.rnd)
}

// Question returns the current question, drawing one if there is none.
func (s *Session) Question() Question {
	if s.state.Current == nil {
		return s.Draw()
	}
	return *s.state.Current
}

// Submit grades chosen and advances to the next question.
func (s *Session) Submit(chosen string) (Result, error) {
	return Submit(s.state, s.table, s.rnd, chosen)
}

func (s *Session) Score() int              { return s.state.Score() }
func (s *Session) Attempts() int           { return s.state.AttemptCount() }
func (s *Session) History() []HistoryEntry { return s.state.Entries() }
