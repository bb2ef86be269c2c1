// Package deck sequences a phrase list in shuffled passes.
package deck

import (
	"math/rand"
	"time"
)

// Deck hands out phrases in a shuffled order, reshuffling after every full pass.
type Deck struct {
	rnd    *rand.Rand
	source []string
	order  []string
	cursor int
}

// New returns a Deck over phrases. A nil rnd is seeded with the current time.
func New(phrases []string, rnd *rand.Rand) *Deck {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rnd: rnd}
	d.Reset(phrases)
	return d
}

// Reset replaces the phrase set and starts a fresh pass.
func (d *Deck) Reset(phrases []string) {
	d.source = append([]string(nil), phrases...)
	d.cursor = 0
	d.shuffle()
}

// Len returns the number of phrases in the deck.
func (d *Deck) Len() int {
	return len(d.source)
}

// Empty reports whether the deck has nothing to show.
func (d *Deck) Empty() bool {
	return len(d.source) == 0
}

// Current returns the phrase under the cursor.
func (d *Deck) Current() (string, bool) {
	if len(d.order) == 0 {
		return "", false
	}
	return d.order[d.cursor], true
}

// Advance moves to the next phrase. Running past the end starts a new pass
// with a fresh shuffle, which may repeat the phrase just shown.
func (d *Deck) Advance() {
	if len(d.order) == 0 {
		return
	}
	d.cursor++
	if d.cursor >= len(d.order) {
		d.shuffle()
		d.cursor = 0
	}
}

func (d *Deck) shuffle() {
	if len(d.source) == 0 {
		d.order = nil
		return
	}
	d.order = append(d.order[:0], d.source...)
	d.rnd.Shuffle(len(d.order), func(i, j int) {
		d.order[i], d.order[j] = d.order[j], d.order[i]
	})
}
