package word

import "strings"

// Word is one catalog vocabulary entry. The catalog is shared between users
// and immutable once imported.
type Word struct {
	WID     string       `json:"wid"`
	Word    string       `json:"word"`
	Pron    string       `json:"pron,omitempty"`
	POS     PartOfSpeech `json:"pos"`
	Explain string       `json:"explain"`
	Audio   string       `json:"audio,omitempty"`
}

// MakeWID builds the catalog identifier for a word: the headword with spaces
// collapsed to underscores, joined to its part-of-speech tag with "~".
func MakeWID(headword string, pos PartOfSpeech) string {
	normalized := strings.Join(strings.Fields(strings.TrimSpace(headword)), "_")
	return normalized + "~" + pos.String()
}
