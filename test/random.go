package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// IntBetween returns a random value in the closed interval [min, max]
func IntBetween(min, max int64) int64 {
	return min + Rand.Int63n(max-min+1)
}
