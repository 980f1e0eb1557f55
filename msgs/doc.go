// Package msgs is the message lookup-and-interpolate service for diagnostics.
//
// Every error raised by store and query carries a message Key plus positional
// arguments instead of a pre-rendered sentence, so callers can render it in any
// language. msgs ships an English and a Japanese catalog built with
// golang.org/x/text/message/catalog:
//
//	errNumericRange  : "{0} number must be {1} than or equal to {2}."
//	errNoTarget      : "There are no {0} in the {1}."
//	errNotExist      : "{0} does not exist."
//	errNotSpecify    : "{0} is not specified."
//	errInvalidSpecify: "Please specify {0} for {1}."
//	errNotCovered    : "{0} requires the prime table to start at or below {1}."
//
// Arguments of type Term are themselves looked up in the catalog, so words such
// as "Starting" or "greater" are translated along with the sentence.
// Integer arguments are rendered without digit grouping.
//
// Usage:
//
//	if err := st.Reconfigure(store.WithMaxBound(0)); err != nil {
//		fmt.Println(msgs.Localize(err, language.Japanese))
//	}
package msgs
