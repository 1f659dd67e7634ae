package index

import "strings"

// Query is a parsed SMJ7-style query: comma-separated terms where a prefix
// selects the field (! genre, @ artist, # album, $ title) and a bare term
// matches artist, album or title. Like-typed terms OR together; unlike
// groups AND.
type Query struct {
	Genres  []string
	Artists []string
	Albums  []string
	Titles  []string
	Any     []string
}

// ParseQuery splits an SMJ7-style input into its field groups.
func ParseQuery(input string) Query {
	var q Query
	for _, word := range strings.Split(input, ",") {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		switch {
		case strings.HasPrefix(word, "!"):
			q.Genres = append(q.Genres, word[1:])
		case strings.HasPrefix(word, "@"):
			q.Artists = append(q.Artists, word[1:])
		case strings.HasPrefix(word, "#"):
			q.Albums = append(q.Albums, word[1:])
		case strings.HasPrefix(word, "$"):
			q.Titles = append(q.Titles, word[1:])
		default:
			q.Any = append(q.Any, word)
		}
	}
	return q
}

// Empty reports whether the query constrains nothing.
func (q Query) Empty() bool {
	return len(q.Genres)+len(q.Artists)+len(q.Albums)+len(q.Titles)+len(q.Any) == 0
}

// looksLikeSMJ7 reports whether an input uses the prefix syntax, as opposed
// to a backend-native query string.
func looksLikeSMJ7(input string) bool {
	return strings.ContainsAny(input, "!@#$") || strings.Contains(input, ",")
}
