// Package entities defines the domain types for destiny deck resolution
package entities

import "fmt"

// Suit identifies one of the four playing card suits
type Suit string

// Suits
const (
	SuitSpades   Suit = "spades"
	SuitHearts   Suit = "hearts"
	SuitClubs    Suit = "clubs"
	SuitDiamonds Suit = "diamonds"
)

// AllSuits lists the suits in canonical order
var AllSuits = []Suit{SuitSpades, SuitHearts, SuitClubs, SuitDiamonds}

// Rank bounds. Face cards are 11=Jack, 12=Queen, 13=King, 14=Ace.
const (
	RankMin  int32 = 2
	RankJack int32 = 11
	RankAce  int32 = 14
	RankMax  int32 = RankAce
)

// Card is an immutable playing card value. Cards carry no identity beyond
// suit and rank; the same value may appear more than once in a single draw.
type Card struct {
	Suit Suit  `json:"suit"`
	Rank int32 `json:"rank"`
}

// String renders the card as e.g. "King of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", RankName(c.Rank), suitNames[c.Suit])
}

var suitNames = map[Suit]string{
	SuitSpades:   "Spades",
	SuitHearts:   "Hearts",
	SuitClubs:    "Clubs",
	SuitDiamonds: "Diamonds",
}

var rankNames = map[int32]string{
	2: "Two", 3: "Three", 4: "Four", 5: "Five", 6: "Six", 7: "Seven",
	8: "Eight", 9: "Nine", 10: "Ten", 11: "Jack", 12: "Queen", 13: "King",
	14: "Ace",
}

// RankName returns the display name for a rank value
func RankName(rank int32) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}
	return fmt.Sprintf("Rank %d", rank)
}

// RankPlural returns the plural display name for a rank value ("Sixes",
// "Kings")
func RankPlural(rank int32) string {
	switch rank {
	case 6:
		return "Sixes"
	default:
		return RankName(rank) + "s"
	}
}

// SuitName returns the display name for a suit
func SuitName(s Suit) string {
	return suitNames[s]
}
