package msgs

import (
	"errors"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer renders catalog messages for one language.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer for the supported language closest to tag,
// backed by the built-in catalog. Unsupported tags get English.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(supported(tag), message.Catalog(defaultCatalog))}
}

// Format interpolates args into the template for key.
// Term args are translated first; integers are printed without grouping.
func (pr *Printer) Format(key Key, args ...any) string {
	rendered := make([]any, len(args))
	for i, a := range args {
		rendered[i] = pr.arg(a)
	}

	return pr.p.Sprintf(string(key), rendered...)
}

// Localize renders err through the catalog when it implements Message
// (anywhere in its wrap chain); other errors fall back to err.Error().
func (pr *Printer) Localize(err error) string {
	if err == nil {
		return ""
	}
	var m Message
	if errors.As(err, &m) {
		return pr.Format(m.MessageKey(), m.MessageArgs()...)
	}

	return err.Error()
}

func (pr *Printer) arg(a any) string {
	switch v := a.(type) {
	case Term:
		return pr.p.Sprintf(string(v))
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return pr.p.Sprint(v)
	}
}

// Format is shorthand for NewPrinter(tag).Format(key, args...).
func Format(tag language.Tag, key Key, args ...any) string {
	return NewPrinter(tag).Format(key, args...)
}

// Localize is shorthand for NewPrinter(tag).Localize(err).
func Localize(err error, tag language.Tag) string {
	return NewPrinter(tag).Localize(err)
}

// English renders key in English; error types use it for Error().
func English(key Key, args ...any) string {
	return Format(language.English, key, args...)
}
