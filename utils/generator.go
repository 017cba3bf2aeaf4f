package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const codePrefix = "ELLP"
const codeSuffixLength = 6
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateVerificationCode builds a human-auditable certificate code of
// the form ELLP-<unix millis>-<6 random alphanumerics>. The timestamp
// component makes collisions between codes issued at different moments
// impossible; the random suffix covers same-millisecond issuance.
func GenerateVerificationCode() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, codeSuffixLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}

	return fmt.Sprintf("%s-%d-%s", codePrefix, time.Now().UnixMilli(), string(b))
}
