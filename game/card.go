package game

// Color represents a card color. Wild is the color of an unresolved wild
// card; resolving a wild replaces it with one of the four concrete colors.
type Color int

const (
	Red Color = iota
	Blue
	Yellow
	Green
	ColorWild
)

// ConcreteColors are the colors a wild card may be resolved to.
var ConcreteColors = []Color{Red, Blue, Yellow, Green}

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	case Green:
		return "GREEN"
	case ColorWild:
		return "WILD"
	}
	return "UNKNOWN"
}

func (c Color) letter() byte {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	}
	return 'W'
}

// Rank represents a card rank.
type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	DrawTwo
	Reverse
	Wild
	WildDrawFour
)

func (r Rank) letter() byte {
	switch {
	case r <= Nine:
		return byte('0' + r)
	case r == Skip:
		return 'S'
	case r == DrawTwo:
		return 'D'
	case r == Reverse:
		return 'R'
	case r == Wild:
		return 'W'
	}
	return 'X'
}

// Card is an immutable value: a color and a rank. Wild cards carry ColorWild
// until resolved; resolving constructs a new Card rather than mutating a
// shared one, so hands and legal-action lists never alias a changing color.
type Card struct {
	Color Color
	Rank  Rank
}

// ParseCard decodes a 2-character card code such as "R5", "GS" or "WX".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, &DecodeError{Code: code}
	}

	var color Color
	switch code[0] {
	case 'R':
		color = Red
	case 'B':
		color = Blue
	case 'Y':
		color = Yellow
	case 'G':
		color = Green
	case 'W':
		color = ColorWild
	default:
		return Card{}, &DecodeError{Code: code}
	}

	var rank Rank
	switch {
	case code[1] >= '0' && code[1] <= '9':
		rank = Rank(code[1] - '0')
	case code[1] == 'S':
		rank = Skip
	case code[1] == 'D':
		rank = DrawTwo
	case code[1] == 'R':
		rank = Reverse
	case code[1] == 'W':
		rank = Wild
	case code[1] == 'X':
		rank = WildDrawFour
	default:
		return Card{}, &DecodeError{Code: code}
	}

	if (rank == Wild || rank == WildDrawFour) != (color == ColorWild) {
		return Card{}, &DecodeError{Code: code}
	}
	return Card{Color: color, Rank: rank}, nil
}

// MustParseCard is ParseCard for static card codes; it panics on a bad code.
func MustParseCard(code string) Card {
	card, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return card
}

// Code re-encodes the card as a 2-character code. A resolved wild shows its
// concrete color letter.
func (c Card) Code() string {
	return string([]byte{c.Color.letter(), c.Rank.letter()})
}

func (c Card) String() string {
	return c.Code()
}

// IsWild reports whether the card is a wild by rank, regardless of whether
// its color has been resolved.
func (c Card) IsWild() bool {
	return c.Rank == Wild || c.Rank == WildDrawFour
}

// IsSpecial reports whether the card has a special effect when played.
func (c Card) IsSpecial() bool {
	return c.Rank >= Skip
}

// WithColor returns a copy of the card resolved to the given concrete color.
func (c Card) WithColor(color Color) Card {
	return Card{Color: color, Rank: c.Rank}
}

// AsWild returns a copy of the card with any resolved color removed. Used
// when recycling the play pile back into the draw pile.
func (c Card) AsWild() Card {
	if c.IsWild() {
		return Card{Color: ColorWild, Rank: c.Rank}
	}
	return c
}

// IsPlayable determines whether this card can be played onto the top card:
// matching color, matching rank, or an unresolved wild.
func (c Card) IsPlayable(top Card) bool {
	return c.Color == top.Color || c.Rank == top.Rank || c.Color == ColorWild
}

// activate applies the card's special effect onto the game. It must run only
// after the card is on the play pile and the turn has advanced: skip and
// draw-stacking effects target whoever is current at that point.
func (c Card) activate(g *Game) error {
	if g.IsOver() {
		return nil
	}
	switch c.Rank {
	case Skip:
		g.log("%s's turn is skipped!", g.CurrentPlayer().Name())
		g.endOfTurn()
	case Reverse:
		g.log("The direction of play is reversed!")
		g.clockwise = !g.clockwise
		// With two players a reverse acts as a second skip.
		if g.NumPlayers() == 2 {
			g.log("%s's turn is skipped!", g.CurrentPlayer().Name())
			g.endOfTurn()
		}
	case DrawTwo:
		return g.punishCurrentPlayer(2)
	case WildDrawFour:
		return g.punishCurrentPlayer(4)
	}
	return nil
}

func (g *Game) punishCurrentPlayer(cards int) error {
	victim := g.CurrentPlayer()
	for i := 0; i < cards; i++ {
		card, err := g.drawCard()
		if err != nil {
			return err
		}
		g.hands[g.currentPlayerIndex] = append(g.hands[g.currentPlayerIndex], card)
	}
	g.log("%s draws %d cards and is skipped!", victim.Name(), cards)
	g.endOfTurn()
	return nil
}
