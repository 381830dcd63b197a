package fixture

import (
	"crypto/rand"
	"math/big"
)

var (
	digitRunes      = []rune("0123456789")
	lowerAlnumRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789")
)

const (
	emailUserLength     = 10
	tinLength           = 9
	accountNumberLength = 12
	emailDomain         = "@test.com"
)

func randomRunes(alphabet []rune, count int) string {
	if count < 0 {
		return ""
	}

	res := make([]rune, count)

	for i := 0; i < count; i++ {
		rnd, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return ""
		}

		res[i] = alphabet[rnd.Int64()]
	}

	return string(res)
}

func RandomDigits(count int) string {
	return randomRunes(digitRunes, count)
}

// RandomEmail returns a 10 character lowercase alphanumeric user at test.com.
func RandomEmail() string {
	return randomRunes(lowerAlnumRunes, emailUserLength) + emailDomain
}

// RandomTin returns a 9 digit tax identification number.
func RandomTin() string {
	return RandomDigits(tinLength)
}

// RandomAccountNumber returns a 12 digit account number without a leading zero.
func RandomAccountNumber() string {
	first := randomRunes(digitRunes[1:], 1)
	if first == "" {
		return ""
	}
	return first + RandomDigits(accountNumberLength-1)
}
