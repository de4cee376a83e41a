package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Message templates embed a pluralization mini-language: a number followed by
// a bracketed tri-form word list, e.g. "5 [znak,znaki,znaków]". Inflect picks
// the grammatically correct form for the number and substitutes
// "{number} {word}". Form selection follows Slavic plural-count grammar:
// last digit 1 (but not 11) takes the first form, last digit 2-4 (but not
// 12-14) the second, everything else the third.
var inflectionPattern = regexp.MustCompile(`(\d+)\s*\[([^\]]+)\]`)

// Inflect replaces every "<number> [one,few,many]" occurrence in text with
// the inflected phrase.
func Inflect(text string) string {
	return inflectionPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := inflectionPattern.FindStringSubmatch(match)
		number, err := strconv.Atoi(groups[1])
		if err != nil {
			return match
		}
		return inflectWord(number, strings.Split(groups[2], ","))
	})
}

func inflectWord(number int, forms []string) string {
	for i := range forms {
		forms[i] = strings.TrimSpace(forms[i])
	}

	index := 2
	lastDigit := number % 10
	lastTwoDigits := number % 100

	switch {
	case lastDigit == 1 && lastTwoDigits != 11:
		index = 0
	case lastDigit >= 2 && lastDigit <= 4 && !(lastTwoDigits >= 12 && lastTwoDigits <= 14):
		index = 1
	}

	if index >= len(forms) {
		index = len(forms) - 1
	}
	return fmt.Sprintf("%d %s", number, forms[index])
}
