package observable

import (
	"sync"
)

const subscriptionBuffer = 16

// Subscription is one listener of an Observable. Values are delivered on
// C(); slow listeners drop the oldest pending value instead of blocking
// the publisher.
type Subscription[T any] struct {
	ch chan T
}

func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

type Observable[T any] struct {
	mx          sync.Mutex
	subscribers map[*Subscription[T]]struct{}
}

func New[T any]() *Observable[T] {
	return &Observable[T]{
		subscribers: make(map[*Subscription[T]]struct{}),
	}
}

func (o *Observable[T]) Subscribe() *Subscription[T] {
	o.mx.Lock()
	defer o.mx.Unlock()

	sub := &Subscription[T]{
		ch: make(chan T, subscriptionBuffer),
	}
	o.subscribers[sub] = struct{}{}

	return sub
}

func (o *Observable[T]) Unsubscribe(sub *Subscription[T]) {
	o.mx.Lock()
	defer o.mx.Unlock()

	if _, exists := o.subscribers[sub]; !exists {
		return
	}

	delete(o.subscribers, sub)
	close(sub.ch)
}

func (o *Observable[T]) Publish(value T) {
	o.mx.Lock()
	defer o.mx.Unlock()

	for sub := range o.subscribers {
		select {
		case sub.ch <- value:
		default:
			// drop oldest, keep the stream moving
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- value:
			default:
			}
		}
	}
}
