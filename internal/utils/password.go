package utils

import "golang.org/x/crypto/bcrypt"

// Passwords hashes and verifies user passwords with bcrypt at a fixed cost.
type Passwords struct {
	Cost int
	// dummy is compared against when no user exists so that unknown and
	// known emails take the same time to reject.
	dummy []byte
}

// NewPasswords returns a Passwords using cost, clamped to bcrypt's range.
func NewPasswords(cost int) *Passwords {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("rail-booking"), cost)
	return &Passwords{Cost: cost, dummy: dummy}
}

// Hash returns a bcrypt hash of plain.
func (p *Passwords) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), p.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares hash and plain in constant time.
func (p *Passwords) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Burn performs a throwaway comparison at the configured cost.
func (p *Passwords) Burn(plain string) {
	_ = bcrypt.CompareHashAndPassword(p.dummy, []byte(plain))
}
