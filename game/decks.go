package game

// Decks maps a deck name to its ordered list of card codes. "basic" has no
// special cards; "standard" is a full deck with skip, draw-two, reverse and
// wilds; "special" is specials only, quadrupled.
var Decks = map[string][]string{
	"basic":    basicDeck(),
	"standard": standardDeck(),
	"special":  specialDeck(4),
}

func basicDeck() []string {
	var deck []string
	for _, color := range []string{"R", "B", "G", "Y"} {
		for rank := 0; rank < 10; rank++ {
			code := color + string(rune('0'+rank))
			deck = append(deck, code)
			if rank > 0 {
				deck = append(deck, code)
			}
		}
	}
	return deck
}

func specialCards() []string {
	var deck []string
	for _, color := range []string{"R", "B", "G", "Y"} {
		for _, rank := range []string{"S", "D", "R"} {
			deck = append(deck, color+rank, color+rank)
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, "WW", "WX")
	}
	return deck
}

func standardDeck() []string {
	return append(basicDeck(), specialCards()...)
}

func specialDeck(copies int) []string {
	var deck []string
	for i := 0; i < copies; i++ {
		deck = append(deck, specialCards()...)
	}
	return deck
}
