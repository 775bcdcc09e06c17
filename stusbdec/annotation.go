package stusbdec

// Category selects the annotation row an annotation belongs to. Warning
// and Error are distinct rows even if a given sink chooses to merge them.
type Category int

const (
	CatAddress Category = iota
	CatRegister
	CatWarning
	CatError
)

func (c Category) String() string {
	switch c {
	case CatAddress:
		return "Address"
	case CatRegister:
		return "Register"
	case CatWarning:
		return "Warning"
	case CatError:
		return "Error"
	}
	return "Unknown"
}

// Annotation is one timestamped, categorized label attached to a span of
// the capture. Text holds the long form first, abbreviated forms after.
type Annotation struct {
	SS   uint64
	ES   uint64
	Cat  Category
	Text []string
}

// Sink receives annotations as they are produced. Put is called
// synchronously from Decode and must not retain the annotation's Text
// slice beyond the call.
type Sink interface {
	Put(ann Annotation)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ann Annotation)

func (f SinkFunc) Put(ann Annotation) { f(ann) }

// put hands one annotation to the sink. Inverted spans are swapped and
// zero-length spans widened by one sample so the sink never sees either.
func (d *Decoder) put(ss, es uint64, cat Category, text ...string) {
	if es < ss {
		ss, es = es, ss
	}
	if es == ss {
		es++
	}
	d.config.Sink.Put(Annotation{SS: ss, ES: es, Cat: cat, Text: text})
}
