package splash

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerFires(t *testing.T) {
	var fired int32
	tm := Start(10*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&fired) == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, tm.Finished())
	assert.False(t, tm.Stop())
}

func TestTimerStopPreventsCallback(t *testing.T) {
	var fired int32
	tm := Start(50*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	assert.False(t, tm.Finished())
}

func TestZeroDelayFinishesImmediately(t *testing.T) {
	fired := false
	tm := Start(0, func() { fired = true })

	assert.True(t, fired)
	assert.True(t, tm.Finished())
}
