package configdef

// Resolver produces the values a run of the app uses.
type Resolver interface {
	Resolve() (Values, error)
}

type defaultResolver struct{}

func (r defaultResolver) Resolve() (Values, error) {
	values := Defaults()
	if err := values.RunValidate(); err != nil {
		return Values{}, err
	}
	return values, nil
}

// DefaultResolver resolves the compiled-in defaults, validated.
func DefaultResolver() Resolver {
	return defaultResolver{}
}
