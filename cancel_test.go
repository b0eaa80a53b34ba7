package skribbl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	var nilFlag *Flag
	assert.False(t, nilFlag.Cancelled())

	f := new(Flag)
	assert.False(t, f.Cancelled())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Cancel()
		}()
	}
	wg.Wait()
	assert.True(t, f.Cancelled())

	f.Reset()
	assert.False(t, f.Cancelled())
}
