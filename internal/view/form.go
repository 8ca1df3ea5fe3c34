// Package view implements the dynamic rendering protocol over a parsed
// template: a renderer registry keyed by component type, a loader that
// instantiates renderer trees into named hosts, the shared question-view
// contract, and the autosave/autofill observers over the live view set.
//
// Everything here is synchronous: a renderer's whole init lifecycle
// completes before the loader moves to the next sibling, so later siblings
// can read form-wide validity computed by earlier ones.
package view

// Control is one named form control. Values are string-encoded the same
// way answers are.
type Control struct {
	name      string
	value     string
	required  bool
	disabled  bool
	touched   bool
	listeners []func(value string)
}

func NewControl(name string, required bool) *Control {
	return &Control{name: name, required: required}
}

func (c *Control) Name() string  { return c.name }
func (c *Control) Value() string { return c.value }

// SetValue updates the control. Listeners fire unless silent; silent
// updates are how stored answers are replayed without re-triggering
// change handling.
func (c *Control) SetValue(v string, silent bool) {
	c.value = v
	if silent {
		return
	}
	c.touched = true
	for _, fn := range c.listeners {
		fn(v)
	}
}

// Subscribe registers a change listener, invoked synchronously on
// non-silent updates.
func (c *Control) Subscribe(fn func(value string)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Control) Disable() { c.disabled = true }
func (c *Control) Enable()  { c.disabled = false }

func (c *Control) Disabled() bool { return c.disabled }
func (c *Control) Touched() bool  { return c.touched }

// ClearValidation resets validation state without destroying the control
// identity, so a later re-attach rebinds cleanly.
func (c *Control) ClearValidation() {
	c.touched = false
}

// Valid reports whether the control satisfies its own requirement.
// Disabled controls are always valid.
func (c *Control) Valid() bool {
	return c.disabled || !c.required || c.value != ""
}

// Form is the shared form-state object one display tree binds into.
type Form struct {
	controls map[string]*Control
	order    []string
}

func NewForm() *Form {
	return &Form{controls: make(map[string]*Control)}
}

// Attach registers a control under its name. Attaching the same name twice
// keeps exactly one registration: the already-registered control wins so
// control identity is stable across repeated AddToForm calls.
func (f *Form) Attach(c *Control) *Control {
	if existing, ok := f.controls[c.name]; ok {
		return existing
	}
	f.controls[c.name] = c
	f.order = append(f.order, c.name)
	return c
}

// Detach removes the control's registration and clears its validation
// state. The control object itself survives for later re-attachment.
func (f *Form) Detach(name string) {
	c, ok := f.controls[name]
	if !ok {
		return
	}
	c.ClearValidation()
	delete(f.controls, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Control returns the registered control under name, nil if absent.
func (f *Form) Control(name string) *Control {
	return f.controls[name]
}

// Has reports whether a control is registered under name.
func (f *Form) Has(name string) bool {
	_, ok := f.controls[name]
	return ok
}

// Len returns the number of registered controls.
func (f *Form) Len() int { return len(f.controls) }

// Valid reports whether every registered control is valid.
func (f *Form) Valid() bool {
	for _, c := range f.controls {
		if !c.Valid() {
			return false
		}
	}
	return true
}
