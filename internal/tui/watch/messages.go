package watch

// frameMsg fires a scheduled render-loop frame. The id ties it to the
// RequestFrame call that produced it.
type frameMsg struct {
	id uint64
}

// ClearErrorMsg requests error banner dismissal.
type ClearErrorMsg struct{}
