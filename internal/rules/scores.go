package rules

import "unicode"

// letterScores holds the face value of each tile, indexed from 'A'
var letterScores = [26]int{
	1,  // A
	3,  // B
	3,  // C
	2,  // D
	1,  // E
	4,  // F
	2,  // G
	4,  // H
	1,  // I
	8,  // J
	5,  // K
	1,  // L
	3,  // M
	1,  // N
	1,  // O
	3,  // P
	10, // Q
	1,  // R
	1,  // S
	1,  // T
	1,  // U
	4,  // V
	4,  // W
	8,  // X
	4,  // Y
	10, // Z
}

// LetterScore returns the face value of a tile. Lowercase letters score the
// same as their uppercase form; anything outside A-Z scores 0.
func LetterScore(letter rune) int {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return 0
	}
	return letterScores[upper-'A']
}

// IsLetter returns true if the rune is a playable tile letter (A-Z, either case)
func IsLetter(letter rune) bool {
	upper := unicode.ToUpper(letter)
	return upper >= 'A' && upper <= 'Z'
}
