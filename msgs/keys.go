package msgs

// Key identifies a message template in the catalog.
type Key string

// Message keys.
const (
	// ErrNumericRange args: subject Term, relation Term (Greater/Less), limit.
	ErrNumericRange Key = "errNumericRange"

	// ErrNoTarget args: target Term, scope Term.
	ErrNoTarget Key = "errNoTarget"

	// ErrNotExist args: subject Term.
	ErrNotExist Key = "errNotExist"

	// ErrNotSpecify args: subject Term.
	ErrNotSpecify Key = "errNotSpecify"

	// ErrInvalidSpecify args: field Term, accepted values Term.
	ErrInvalidSpecify Key = "errInvalidSpecify"

	// ErrNotCovered args: operation Term, required lower bound.
	ErrNotCovered Key = "errNotCovered"
)

// Term is a translatable word or phrase used as a message argument.
type Term string

// Terms used by the store and query packages.
const (
	Specified      Term = "Specified"
	Starting       Term = "Starting"
	Ending         Term = "Ending"
	MinBound       Term = "MinBound"
	MaxBound       Term = "MaxBound"
	DecimalPlaces  Term = "Decimal point position"
	Greater        Term = "greater"
	Less           Term = "less"
	EndingNumber   Term = "ending number"
	PrimeNumbers   Term = "prime numbers"
	SpecifiedRange Term = "specified range"
	MultInverse    Term = "Multiplicative inverse"
	SettingValue   Term = "Setting value"
	Algorithm      Term = "algorithm"
	AlgorithmNames Term = "eratosthenes or atkin"
	Factorization  Term = "Prime factorization"
)

// Message is implemented by errors that can be rendered through the catalog.
type Message interface {
	MessageKey() Key
	MessageArgs() []any
}
