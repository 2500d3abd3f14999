package vlist

// Surface is the render binding a List draws into. Offsets are positions
// along the scroll axis, in the same unit as the item extent.
//
// Implementations must not call back into the List from Attach, Replace,
// Detach or any setter. Scroll and resize notifications are delivered through
// the handlers registered with OnScroll and OnResize, outside those calls.
type Surface[N any] interface {
	// Attach inserts node at offset.
	Attach(node N, offset int)
	// Replace removes old and inserts node at offset in its place.
	Replace(old, node N, offset int)
	// Detach removes node.
	Detach(node N)

	ViewportExtent() int
	SetContentExtent(extent int)
	ScrollOffset() int
	SetScrollOffset(offset int)

	OnScroll(fn func() error) Subscription
	OnResize(fn func() error) Subscription

	// Release detaches the container from its parent.
	Release()
}

// Subscription is a registered notification handler.
type Subscription interface {
	Unsubscribe()
}

// Factory builds the rendered node for records[index]. It returns ok false
// when the record should not be rendered; the slot is left empty.
type Factory[T, N any] func(record T, index int, records []T) (node N, ok bool, err error)

// SubscriptionFunc adapts a plain function to Subscription.
type SubscriptionFunc func()

// Unsubscribe calls f.
func (f SubscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}
