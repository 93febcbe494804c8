//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stoplists

var (
	// English150 - the most common english words; cf the old snowball list
	English150 = []string{"the", "of", "and", "a", "to", "in", "is", "you", "that", "it", "he", "was", "for", "on",
		"are", "as", "with", "his", "they", "i", "at", "be", "this", "have", "from", "or", "one", "had", "by",
		"word", "but", "not", "what", "all", "were", "we", "when", "your", "can", "said", "there", "use", "an",
		"each", "which", "she", "do", "how", "their", "if", "will", "up", "other", "about", "out", "many", "then",
		"them", "these", "so", "some", "her", "would", "make", "like", "him", "into", "time", "has", "look",
		"two", "more", "write", "go", "see", "number", "no", "way", "could", "people", "my", "than", "first",
		"been", "who", "its", "now", "find", "long", "down", "day", "did", "get", "come", "made", "may", "part",
		"over", "new", "sound", "take", "only", "little", "work", "know", "place", "year", "live", "me", "back",
		"give", "most", "very", "after", "thing", "our", "just", "name", "good", "sentence", "man", "think",
		"say", "great", "where", "help", "through", "much", "before", "line", "right", "too", "mean", "old",
		"any", "same", "tell", "boy", "follow", "came", "want", "show", "also", "around", "form", "three",
		"small", "set", "put", "end", "does", "another"}
	// EnglishExtra - words that pollute topic models without being on the common list
	EnglishExtra = []string{"am", "because", "both", "cannot", "dear", "either", "ever", "every", "hers", "himself",
		"herself", "however", "itself", "least", "let", "likely", "might", "must", "neither", "nor", "often",
		"ought", "rather", "shall", "should", "since", "such", "thus", "unto", "upon", "us", "whom", "whose",
		"yet", "yours"}
	EnglishStop = append(English150, EnglishExtra...)
	// EnglishKeep - members of EnglishStop we will not toss: they carry topical signal often enough
	EnglishKeep = []string{"word", "sound", "work", "place", "year", "name", "sentence", "man", "line", "boy",
		"form", "number", "people", "day", "time"}
)
