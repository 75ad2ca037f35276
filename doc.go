// Package rolema converts names and phrases into short, readable codes made
// of three-letter groups, a human-friendly alternative to QR codes.
//
// # Quick Start
//
//	code := rolema.Encode("Eiffel Tower", nil)
//	fmt.Println(code) // EIF-TOW
//
// # Community Codes
//
// A Dictionary overrides the generated code for exact names:
//
//	dict, err := rolema.OpenDictionary("community.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rolema.Encode("Sydney Opera House", dict))
//
// # Encoding Rules
//
// Input is folded to the Latin alphabet (é -> E, ß -> SS) and split on every
// character that is not an ASCII letter or digit. Each word contributes its
// first three characters, uppercased; shorter words, including single
// letters and initials, are kept whole without padding. Groups are joined
// with "-". Input with no letters or digits encodes to "".
//
// # Thread Safety
//
// Encoder and Dictionary values are immutable and safe for concurrent use.
package rolema
