package charts

type Domain interface {
	Diff(float64) float64
	Extend() float64
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scaler gives the position of a value relative to a domain, 0 and 1 being
// its limits.
type Scaler interface {
	Normalize(float64) float64
}

type numberScaler struct {
	Domain
}

func NumberScaler(dom Domain) Scaler {
	return numberScaler{
		Domain: dom,
	}
}

func (n numberScaler) Normalize(v float64) float64 {
	return n.Diff(v) / n.Extend()
}

// CategoryScaler spaces a finite ordered set of labels evenly over a range.
// Each label owns a slot of width Space and is placed at the slot centre.
type CategoryScaler struct {
	Range
	Strings []string
}

func NewCategoryScaler(str []string, rg Range) CategoryScaler {
	var s CategoryScaler
	s.Range = rg
	return s.Merge(str)
}

func (s CategoryScaler) Index(v string) (int, bool) {
	for i := range s.Strings {
		if s.Strings[i] == v {
			return i, true
		}
	}
	return -1, false
}

func (s CategoryScaler) Scale(v string) (float64, bool) {
	x, ok := s.Index(v)
	if !ok {
		return 0, false
	}
	return s.F + (float64(x)+0.5)*s.Space(), true
}

func (s CategoryScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s CategoryScaler) Values() []string {
	return s.Strings
}

func (s CategoryScaler) Merge(values []string) CategoryScaler {
	var (
		list  []string
		seen  = make(map[string]struct{})
		empty = struct{}{}
	)
	merge := func(values []string) {
		for _, v := range values {
			_, ok := seen[v]
			if ok {
				continue
			}
			list = append(list, v)
			seen[v] = empty
		}
	}
	merge(s.Strings)
	merge(values)

	x := s
	x.Strings = list
	return x
}
