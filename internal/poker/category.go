package poker

// Category is the rank class of a 5-card hand. Exactly one category
// applies to any five cards; ordering follows the constant values.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high_card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two_pair"
	case Trips:
		return "trips"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case Quads:
		return "quads"
	case StraightFlush:
		return "straight_flush"
	case RoyalFlush:
		return "royal_flush"
	default:
		return "unknown"
	}
}
