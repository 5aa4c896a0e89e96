package word

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// PartOfSpeech is the single-letter tag that identifies a word's grammatical
// class inside the catalog identifier.
type PartOfSpeech string

const (
	POSPhrasal     PartOfSpeech = "p"
	POSVerb        PartOfSpeech = "v"
	POSNoun        PartOfSpeech = "n"
	POSAdjective   PartOfSpeech = "x"
	POSAdverb      PartOfSpeech = "f"
	POSConjunction PartOfSpeech = "c"
	POSPronoun     PartOfSpeech = "d"
	POSPreposition PartOfSpeech = "j"
	POSOther       PartOfSpeech = "o"
)

func (PartOfSpeech) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(POSPhrasal), string(POSVerb), string(POSNoun),
			string(POSAdjective), string(POSAdverb), string(POSConjunction),
			string(POSPronoun), string(POSPreposition), string(POSOther),
		},
		Description: "Part-of-speech tag",
		Examples:    []any{POSNoun},
	}
}

// Validate implements huma's validation hook.
func (p PartOfSpeech) Validate() error {
	switch p {
	case POSPhrasal, POSVerb, POSNoun, POSAdjective, POSAdverb,
		POSConjunction, POSPronoun, POSPreposition, POSOther:
		return nil
	}
	return fmt.Errorf("invalid part-of-speech tag: %q", string(p))
}

func (p PartOfSpeech) String() string {
	return string(p)
}

// DisplayName returns the human-readable name of the tag.
func (p PartOfSpeech) DisplayName() string {
	switch p {
	case POSPhrasal:
		return "phrasal verb"
	case POSVerb:
		return "verb"
	case POSNoun:
		return "noun"
	case POSAdjective:
		return "adjective"
	case POSAdverb:
		return "adverb"
	case POSConjunction:
		return "conjunction"
	case POSPronoun:
		return "pronoun"
	case POSPreposition:
		return "preposition"
	default:
		return "other"
	}
}

// ClassifyPOS maps a free-form part-of-speech label from an import source
// ("noun", "adj.", "phrasal verb", ...) onto the closed tag set. Unrecognized
// labels fall back to POSOther.
func ClassifyPOS(label string) PartOfSpeech {
	label = strings.ToLower(label)
	// Longer labels embed shorter ones ("adverb" contains "verb", "pronoun"
	// contains "noun"), so the specific checks come first.
	switch {
	case strings.Contains(label, "phr"):
		return POSPhrasal
	case strings.Contains(label, "pron"):
		return POSPronoun
	case strings.Contains(label, "prep"):
		return POSPreposition
	case strings.Contains(label, "conj"):
		return POSConjunction
	case strings.Contains(label, "adv"):
		return POSAdverb
	case strings.Contains(label, "adj"):
		return POSAdjective
	case strings.Contains(label, "verb"), strings.Contains(label, "v."):
		return POSVerb
	case strings.Contains(label, "noun"), strings.Contains(label, "n."):
		return POSNoun
	}
	return POSOther
}
