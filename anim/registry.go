package anim

// Registry owns a named collection of animations and tracks which one is
// current. Once anything has been added, something is always selected and
// playing: the first add auto-plays, and replacing the current entry
// re-selects the replacement through the same path.
//
// All methods expect a single update context; callers sharing a Registry
// across goroutines must synchronize externally.
type Registry struct {
	target     *Sprite
	animations map[string]Animation

	// current is tracked by map key, not by reference, so a replaced
	// entry can never be observed stale.
	currentKey string
	currentSet bool

	log Logger
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithCapacity pre-sizes the animation map. Purely a performance hint.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.animations = make(map[string]Animation, n)
		}
	}
}

// WithLogger replaces the stdlib-log diagnostics sink.
func WithLogger(l Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates a Registry whose animations default to driving target.
// The target is fixed for the registry's lifetime.
func NewRegistry(target *Sprite, opts ...Option) *Registry {
	r := &Registry{
		target:     target,
		animations: make(map[string]Animation),
		log:        stdLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a under name. A nil animation is reported and dropped. An
// existing mapping under the same name is replaced; replacing the current
// animation clears the selection first, so the replacement is auto-played.
// The animation keeps a pre-assigned target but always takes the name as its
// key.
func (r *Registry) Add(name string, a Animation) {
	if a == nil {
		r.log.Errorf("anim: refusing to add nil animation %q", name)
		return
	}

	if _, ok := r.animations[name]; ok {
		r.log.Warnf("anim: animation %q already registered, replacing", name)
		delete(r.animations, name)
		if r.currentSet && r.currentKey == name {
			r.currentSet = false
			r.currentKey = ""
		}
	}

	if a.Target() == nil {
		a.SetTarget(r.target)
	}
	a.SetKey(name)
	r.animations[name] = a

	// Guarantee that something is playing once anything exists.
	if !r.currentSet {
		r.Play(name)
	}
}

// Get looks up an animation by exact key. A miss is reported and returns
// false; callers probe speculatively, so it is not a hard failure.
func (r *Registry) Get(name string) (Animation, bool) {
	a, ok := r.animations[name]
	if !ok {
		r.log.Errorf("anim: no animation named %q", name)
		return nil, false
	}
	return a, true
}

// GetMany looks up each name independently. Misses are skipped, so the
// result may be shorter than the input; hits keep the input order.
func (r *Registry) GetMany(names ...string) []Animation {
	out := make([]Animation, 0, len(names))
	for _, name := range names {
		if a, ok := r.Get(name); ok {
			out = append(out, a)
		}
	}
	return out
}

// GetAll returns a snapshot of every registered animation in no particular
// order.
func (r *Registry) GetAll() []Animation {
	out := make([]Animation, 0, len(r.animations))
	for _, a := range r.animations {
		out = append(out, a)
	}
	return out
}

// Play selects the named animation and starts it. An unknown name no-ops
// beyond the lookup diagnostic.
func (r *Registry) Play(name string) {
	a, ok := r.Get(name)
	if !ok {
		return
	}
	r.currentKey = name
	r.currentSet = true
	a.Play()
}

// PlayIfDifferent plays the named animation unless it is already current.
// With nothing selected it always plays.
func (r *Registry) PlayIfDifferent(name string) {
	if r.currentSet && r.currentKey == name {
		return
	}
	r.Play(name)
}

// Current returns the selected animation, if any.
func (r *Registry) Current() (Animation, bool) {
	if !r.currentSet {
		return nil, false
	}
	a, ok := r.animations[r.currentKey]
	return a, ok
}
