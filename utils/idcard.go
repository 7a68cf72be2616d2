package utils

import (
	"regexp"
	"strings"
)

// 18-digit resident ID: 6-digit region, birth date, 3-digit sequence, check
// character.
var idCardPattern = regexp.MustCompile(`^[1-9]\d{5}(18|19|[23]\d)\d{2}(0[1-9]|1[0-2])([0-2][1-9]|10|20|30|31)\d{3}[0-9Xx]$`)

var idCardWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

const idCardCheckChars = "10X98765432"

// ValidIDCard reports whether s is a structurally valid resident ID card
// number with a correct check character.
func ValidIDCard(s string) bool {
	if !idCardPattern.MatchString(s) {
		return false
	}
	sum := 0
	for i := 0; i < 17; i++ {
		sum += int(s[i]-'0') * idCardWeights[i]
	}
	want := idCardCheckChars[sum%11]
	got := strings.ToUpper(s[17:])
	return got == string(want)
}
