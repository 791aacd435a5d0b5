package example

import (
	"log"
	"math/big"
	"testing"

	"github.com/qfactor/QFactor-core/shor"
)

func factor() {
	var testConfig = shor.Config{
		MaxAttempts: 32,
	}
	res, err := shor.Factor(big.NewInt(4819), testConfig)
	if err != nil {
		log.Println(err)
		return
	}
	log.Printf("%s = %s * %s (%d bases tried)", res.N, res.P, res.Q, len(res.Attempts))
}

func TestFactorSemiprime(t *testing.T) {
	factor()
}
