package game

// EnterHighScore ends the run as if the last obstacle were gone.
func (s *Session) EnterHighScore() { s.enterHighScore() }

// SetScore overrides the current score.
func (s *Session) SetScore(n int) { s.score = n }
