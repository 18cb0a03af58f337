package ir

import "fmt"

// Name is a source name paired with a number that is unique within the
// NameGenerator that produced it.
type Name struct {
	Text   string
	Unique int
}

func (n Name) String() string {
	return fmt.Sprintf("%s_%d", n.Text, n.Unique)
}

// NameGenerator mints fresh names. The zero value is ready to use. A generator
// is owned by the pass that needs fresh names and is not safe for concurrent
// use.
type NameGenerator struct {
	next int
}

func (g *NameGenerator) Fresh(text string) Name {
	n := Name{Text: text, Unique: g.next}
	g.next++
	return n
}
