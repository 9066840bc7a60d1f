package parse

// DefaultRootName names the synthetic root of a JSON-derived tree when
// no option overrides it.
const DefaultRootName = "root"

type parseOpts struct {
	rootName string
}

type ParseOption func(*parseOpts)

func ParseRootName(name string) ParseOption {
	return func(o *parseOpts) { o.rootName = name }
}
