package core

import (
	"github.com/pkg/errors"
)

// ErrNilStep wird von Add gemeldet, wenn kein Schritt übergeben wurde.
var ErrNilStep = errors.New("core: nil step")

// Step beschreibt eine vorbereitbare Mutation.
//
// Prepare prüft alle Vorbedingungen, ohne Zustand zu verändern, und liefert
// den Publish-Callback. Erst wenn alle Schritte erfolgreich vorbereitet
// wurden, ruft Batch die Publish-Callbacks in Reihenfolge auf.
type Step interface {
	Prepare() (publish func(), err error)
}

// StepFunc adapts a plain function to Step.
type StepFunc func() (func(), error)

// Prepare calls f.
func (f StepFunc) Prepare() (func(), error) {
	return f()
}

// Batch führt eine Folge von Schritten nach dem Alles-oder-nichts-Prinzip aus.
type Batch struct {
	steps   []Step
	version uint64
}

// NewBatch erzeugt einen neuen Batch.
func NewBatch(steps ...Step) *Batch {
	copySteps := append([]Step(nil), steps...)
	return &Batch{steps: copySteps}
}

// Add hängt einen weiteren Schritt an.
func (b *Batch) Add(step Step) error {
	if step == nil {
		return ErrNilStep
	}
	b.steps = append(b.steps, step)
	return nil
}

// Len returns the number of registered steps.
func (b *Batch) Len() int {
	return len(b.steps)
}

// Apply bereitet alle Schritte vor und veröffentlicht sie nur, wenn keiner
// fehlschlägt. Im Fehlerfall bleibt jeder Zustand unverändert.
func (b *Batch) Apply() error {
	if len(b.steps) == 0 {
		return nil
	}

	publishes := make([]func(), 0, len(b.steps))
	for i, step := range b.steps {
		if step == nil {
			return errors.Wrapf(ErrNilStep, "step %d", i)
		}
		publish, err := step.Prepare()
		if err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		if publish == nil {
			publish = func() {}
		}
		publishes = append(publishes, publish)
	}

	for _, publish := range publishes {
		publish()
	}

	b.version++
	return nil
}

// Version gibt die Anzahl erfolgreich angewendeter Durchläufe zurück.
func (b *Batch) Version() uint64 {
	return b.version
}
