package dragonante

import "sync/atomic"

// Account is anything gold can move between: a player's hoard or the pot
type Account interface {
	withdraw(amount int) int
	deposit(amount int)
	balance() int
	String() string
}

var _ Account = (*Player)(nil)
var _ Account = (*Pot)(nil)

// Pot holds the stakes of a gambit
// The balance is read from other goroutines, so it is kept atomically
type Pot struct {
	stakes atomic.Int64
}

// Balance returns the current stakes
func (p *Pot) Balance() int {
	return int(p.stakes.Load())
}

func (p *Pot) balance() int {
	return p.Balance()
}

// withdraw takes at most the current balance; the pot never goes into debt
func (p *Pot) withdraw(amount int) int {
	for {
		current := p.stakes.Load()
		take := int64(amount)
		if take > current {
			take = current
		}

		if p.stakes.CompareAndSwap(current, current-take) {
			return int(take)
		}
	}
}

func (p *Pot) deposit(amount int) {
	p.stakes.Add(int64(amount))
}

func (p *Pot) String() string {
	return "the stakes"
}
