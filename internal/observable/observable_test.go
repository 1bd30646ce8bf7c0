package observable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/observable"
)

func Test_PublishSubscribe(t *testing.T) {
	o := observable.New[int]()

	first := o.Subscribe()
	second := o.Subscribe()

	o.Publish(1)
	o.Publish(2)

	require.Equal(t, 1, <-first.C())
	require.Equal(t, 2, <-first.C())
	require.Equal(t, 1, <-second.C())
	require.Equal(t, 2, <-second.C())
}

func Test_Unsubscribe(t *testing.T) {
	o := observable.New[int]()

	sub := o.Subscribe()
	o.Unsubscribe(sub)

	// the channel closes and later publishes are not delivered
	_, open := <-sub.C()
	require.False(t, open)

	o.Publish(1)

	// unsubscribing twice is a no-op
	o.Unsubscribe(sub)
}

func Test_Publish_SlowSubscriberDropsOldest(t *testing.T) {
	o := observable.New[int]()
	sub := o.Subscribe()

	// overflow the buffer without a reader
	for i := 0; i < 20; i++ {
		o.Publish(i)
	}

	// the first pending value is no longer 0, the stream kept moving
	first := <-sub.C()
	require.Greater(t, first, 0)

	// the latest published value is still delivered
	var last int
	for len(sub.C()) > 0 {
		last = <-sub.C()
	}
	require.Equal(t, 19, last)
}
