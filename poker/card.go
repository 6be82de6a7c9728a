package poker

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitChars = "cdhs"

// String returns the single-character suit notation (c, d, h, s).
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the single-character rank notation (2-9, T, J, Q, K, A).
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Card is a playing card encoded as an index 0-51.
// Layout: index = (rank-2)*4 + suit, so cards are ordered rank-major.
type Card uint8

// NumCards is the size of a standard deck.
const NumCards = 52

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank-Two)*4 + uint8(suit))
}

// Rank returns the card's rank (2-14).
func (c Card) Rank() Rank {
	return Rank(c/4) + Two
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c % 4)
}

// Valid reports whether the card is one of the 52 deck cards.
func (c Card) Valid() bool {
	return c < NumCards
}

// String returns the two-character notation, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// FormatCards renders cards as space separated notation.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '9':
		return Nine, true
	case '8':
		return Eight, true
	case '7':
		return Seven, true
	case '6':
		return Six, true
	case '5':
		return Five, true
	case '4':
		return Four, true
	case '3':
		return Three, true
	case '2':
		return Two, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}

// ParseCard parses a single two-character token like "As" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.Replace(s, "10", "T", 1)
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}
	rank, ok := parseRank(s[0])
	if !ok {
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}
	suit, ok := parseSuit(s[1])
	if !ok {
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}
	return NewCard(rank, suit), nil
}

// ParseCardText extracts every card it can find in free text.
//
// "10" is normalised to "T" first. The text is then scanned for adjacent
// (rank, suit) character pairs; any character that does not start a valid
// pair is skipped, so separators and malformed trailing characters are
// silently dropped. Use ParseCards when malformed input should be reported.
func ParseCardText(text string) []Card {
	s := strings.ReplaceAll(text, "10", "T")
	var cards []Card
	for i := 0; i+1 < len(s); {
		rank, okRank := parseRank(s[i])
		suit, okSuit := parseSuit(s[i+1])
		if okRank && okSuit {
			cards = append(cards, NewCard(rank, suit))
			i += 2
			continue
		}
		i++
	}
	return cards
}

// ParseCards parses card notation strictly. Whitespace and commas separate
// cards but are optional: "AsKd Qh", "As,Kd,Qh" and "AsKdQh" are equivalent.
func ParseCards(text string) ([]Card, error) {
	s := strings.ReplaceAll(text, "10", "T")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\t', '\n':
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, ok := parseRank(s[i])
		if !ok {
			return nil, fmt.Errorf("invalid rank '%c' at position %d", s[i], i)
		}
		suit, ok := parseSuit(s[i+1])
		if !ok {
			return nil, fmt.Errorf("invalid suit '%c' at position %d", s[i+1], i+1)
		}
		cards = append(cards, NewCard(rank, suit))
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}
