package tothepoint

import "github.com/google/uuid"

// Session is an externally-owned navigation cursor over a ranking result,
// built for the presentation layer: it cycles through matches so a UI can
// jump between them. The core never retains a Session between calls; the
// caller owns its lifetime.
type Session struct {
	ID      uuid.UUID
	Matches []RankedMatch

	pos int
}

// NewSession creates a Session positioned before the first match.
func NewSession(result RankingResult) *Session {
	return &Session{
		ID:      uuid.New(),
		Matches: result.Matches,
		pos:     -1,
	}
}

// Len returns the number of matches in the session.
func (s *Session) Len() int { return len(s.Matches) }

// Current returns the match under the cursor. It reports false before the
// first call to Next or Prev, or when the session is empty.
func (s *Session) Current() (RankedMatch, bool) {
	if s.pos < 0 || s.pos >= len(s.Matches) {
		return RankedMatch{}, false
	}
	return s.Matches[s.pos], true
}

// Next advances the cursor, wrapping around to the first match after the
// last. It reports false when the session is empty.
func (s *Session) Next() (RankedMatch, bool) {
	if len(s.Matches) == 0 {
		return RankedMatch{}, false
	}
	s.pos = (s.pos + 1) % len(s.Matches)
	return s.Matches[s.pos], true
}

// Prev moves the cursor backwards, wrapping around to the last match before
// the first. It reports false when the session is empty.
func (s *Session) Prev() (RankedMatch, bool) {
	if len(s.Matches) == 0 {
		return RankedMatch{}, false
	}
	if s.pos <= 0 {
		s.pos = len(s.Matches) - 1
	} else {
		s.pos--
	}
	return s.Matches[s.pos], true
}
