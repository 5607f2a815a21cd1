package payment

// Kind tags a settlement method variant. The set is closed: Method is a
// sealed interface and dispatch happens on the tag alone, never on the
// concrete type of an arbitrary value.
type Kind string

const (
	KindCash Kind = "cash"
	KindCard Kind = "card"
)

type Method interface {
	Kind() Kind
	sealed()
}

// Cash carries the amount the driver tendered.
type Cash struct {
	TenderedCents int64
}

func (Cash) Kind() Kind { return KindCash }
func (Cash) sealed()    {}

// Card carries the credentials handed to the gateway stand-in.
type Card struct {
	Number string
	CVV    string
	Expiry string
}

func (Card) Kind() Kind { return KindCard }
func (Card) sealed()    {}
