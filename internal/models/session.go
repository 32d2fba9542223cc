package models

// Session is the state carried in the signed session cookie.
type Session struct {
	UserID  int      // 0 when nobody is logged in
	Flashes []string // one-shot messages shown on the next rendered page
}

// AddFlash queues a message for the next render.
func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes returns the queued messages and clears them.
func (s *Session) PopFlashes() []string {
	out := s.Flashes
	s.Flashes = nil
	return out
}
