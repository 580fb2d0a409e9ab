// Package cardquery is an in-memory card query and filtering engine for
// trading-card game sites: advanced search, deck builder browsing and
// search-as-you-type.
//
// The engine indexes a corpus supplied by the caller and answers queries
// written in a small field-scoped language combined with structured filters.
//
//	eng, _ := cardquery.New(cardquery.WithCacheSize(256))
//	eng.ReplaceCorpus(cards)
//
//	res := eng.Search(`t:creature e:fire cost:<=3 "imp"`,
//	    cardquery.Filters{}.WithRarities(cardquery.Common, cardquery.Uncommon),
//	    cardquery.DefaultPreferences().WithSort(cardquery.SortCost, cardquery.Desc),
//	)
//
// # Query syntax
//
// Whitespace separates terms and all terms must match. Double quotes group a
// phrase. A term without a colon is free text, matched case-insensitively as
// a substring of name, description, keywords, elements, category, rarity,
// artist, set and flavor text. A term with a colon is a field directive:
//
//	name|n  description|desc|d  keyword|k  artist|a  set|s  flavor|f
//	type|t  rarity|r  element|e  cost|c  strength|str  price|p
//
// Numeric fields accept a leading operator (=, !=, !, <, >, <=, >=).
// rarity accepts operators compared by rank (r:>=rare). element takes a comma
// separated list and requires every listed element. An unknown field never
// matches; an unparseable number is ignored.
//
// # Search-as-you-type
//
// Searches are synchronous and lock-free. Debounce keystrokes at the caller
// with Debouncer.
package cardquery
