package pack

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/vram-io/dtk/pkg/coord"
)

// This contains test utility functions for testing in the pack package

func newValidPointGenerator(maxSize int) func([]reflect.Value, *rand.Rand) {
	return func(values []reflect.Value, rand *rand.Rand) {
		if len(values) != 1 {
			panic(fmt.Errorf("unexpected number of values to gen: %d", len(values)))
		}
		p := coord.Point{
			X: rand.Intn(maxSize),
			Y: rand.Intn(maxSize),
		}
		values[0] = reflect.ValueOf(&p)
	}
}
