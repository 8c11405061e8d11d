// Package divide_test provides runnable examples: a moving-knife split of a
// strip and a Knaster auction with side payments.
package divide_test

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
)

// ExampleDubinsSpanier splits [0, 1) among three participants with flat
// valuations.
func ExampleDubinsSpanier() {
	strip, _ := cake.NewContinuous(cake.R(0, 1), cake.R(1, 1))
	users := []cake.Preference{
		cake.NewDensityPreference("ann", cake.Uniform()),
		cake.NewDensityPreference("bob", cake.Uniform()),
		cake.NewDensityPreference("cat", cake.Uniform()),
	}
	d := divide.NewDubinsSpanier(users, strip, divide.WithSeed(1))
	if err := d.IsValid(); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	div, err := d.Divide()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range div.Shares {
		fmt.Println(s.Participant.ID(), s.Own().RatString())
	}
	// Output:
	// ann 1/3
	// bob 1/3
	// cat 1/3
}

// ExampleNewKnasterSealedBids settles an estate of three items in money.
func ExampleNewKnasterSealedBids() {
	estate, _ := cake.NewCollection("house", "car", "piano")
	bid := func(id string, house, car, piano int64) cake.Preference {
		p, _ := cake.NewCollectionPreference(id, cake.IntValues(map[string]int64{
			"house": house, "car": car, "piano": piano,
		}))
		return p
	}
	users := []cake.Preference{bid("ann", 300, 40, 20), bid("bob", 240, 60, 30)}

	div, err := divide.NewKnasterSealedBids(users, estate).Divide()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range div.Shares {
		id := s.Participant.ID()
		fmt.Println(id, s.Pieces, div.Settlement.Money(id, 2))
	}
	// Output:
	// ann [[house]] 97.5
	// bob [[car] [piano]] -97.5
}
