package memory

import "context"

// Friendships is a settable friendship oracle.
type Friendships struct{ s *Store }

func key(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Befriend records an accepted friendship between a and b.
func (f *Friendships) Befriend(a, b string) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.friends[key(a, b)] = true
}

// Unfriend removes the edge between a and b.
func (f *Friendships) Unfriend(a, b string) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.friends, key(a, b))
}

func (f *Friendships) IsAcceptedFriend(_ context.Context, a, b string) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.friends[key(a, b)], nil
}
