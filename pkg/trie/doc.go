// ## Overview
// Package trie implements a generic, ordered prefix tree (trie) that maps keys
// made of ordered symbols to arbitrary values.
// Every edge of the tree is labelled by exactly one symbol, so a key of length n
// always lives at depth n. Entries are kept in lexicographic order of their keys,
// which makes in-order iteration a plain leftmost walk of the tree.
//
// The trie supports insertion with overwrite, exact-match lookup through an
// iterator, erase with automatic pruning of dead branches, and full ordered
// iteration. It is not safe for concurrent use; callers must serialise access.
//
// ## Example usage:
//
//	dict := trie.NewStringTrie[string]()
//	dict.Insert("wer", "who")
//	dict.Insert("wir", "we")
//	dict.Insert("wird", "will")
//
//	// lookup
//	if it := dict.Find("wir"); !it.IsEnd() {
//	    fmt.Println(it.Value()) // Output: we
//	}
//
//	// ordered iteration
//	for it := dict.Begin(); !it.Equal(dict.End()); it.Next() {
//	    fmt.Println(trie.KeyString(it), it.Value())
//	}
//
//	// tree layout
//	fmt.Print(dict)
//	// w
//	//   e
//	//     r
//	//       :who
//	//   i
//	//     r
//	//       :we
//	//       d
//	//         :will
//
// Any cmp.Ordered type can be used as the symbol type through New:
//
//	t := trie.New[int, string]()
//	t.Insert([]int{1, 2, 3}, "one-two-three")
package trie
