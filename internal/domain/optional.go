package domain

// Optional distinguishes "not supplied" from the zero value.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr maps nil to None, which is how JSON null/absent fields arrive.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the held value, or def when unset.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}
