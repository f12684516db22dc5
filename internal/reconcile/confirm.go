package reconcile

import "github.com/kimlab/readpaper/internal/record"

// Confirmer resolves a genuine conflict between two non-empty values for
// the same field. Returning true accepts the new value; false keeps the
// old one. Implementations may block (e.g. an interactive prompt); the
// merge suspends until they return.
type Confirmer interface {
	Confirm(field record.Field, oldValue, newValue any) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(field record.Field, oldValue, newValue any) bool

func (f ConfirmerFunc) Confirm(field record.Field, oldValue, newValue any) bool {
	return f(field, oldValue, newValue)
}

// KeepOld always retains the existing value. This is the non-interactive
// default policy.
var KeepOld Confirmer = ConfirmerFunc(func(record.Field, any, any) bool {
	return false
})

// AcceptNew always takes the incoming value. Passing it is the "force"
// mode: new always wins a conflict.
var AcceptNew Confirmer = ConfirmerFunc(func(record.Field, any, any) bool {
	return true
})
