package effectunit

// DefaultRegistry returns a Registry pre-populated with all built-in effect runtimes.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(SingleDelay, func(_ Context) (Runtime, error) { return &singleRuntime{}, nil })
	r.MustRegister(DoubleDelay, func(_ Context) (Runtime, error) { return &doubleRuntime{}, nil })
	r.MustRegister(FeedbackDelay, func(_ Context) (Runtime, error) { return &feedbackRuntime{}, nil })
	r.MustRegister(Chorus, func(_ Context) (Runtime, error) { return &chorusRuntime{}, nil })
	r.MustRegister(Flanger, func(_ Context) (Runtime, error) { return &flangerRuntime{}, nil })
	r.MustRegister(Reverb1, func(_ Context) (Runtime, error) { return &reverb1Runtime{}, nil })
	r.MustRegister(Reverb2, func(_ Context) (Runtime, error) { return &reverb2Runtime{}, nil })
	r.MustRegister(Reverb3, func(_ Context) (Runtime, error) { return &reverb3Runtime{}, nil })

	return r
}
