package dictionary

// Action is what an insertion did to the dictionary.
type Action interface {
	String() string
}

type (
	InsertNewWord      struct{} // the word was not in the dictionary
	ReplaceTranslation struct{} // the word existed, its translation was overwritten
	RemoveExistingWord struct{} // the word was removed
)

func (_ InsertNewWord) String() string {
	return "Insert New Word"
}

func (_ ReplaceTranslation) String() string {
	return "Replace Translation"
}

func (_ RemoveExistingWord) String() string {
	return "Remove Existing Word"
}
