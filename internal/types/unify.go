package types

// Prune walks past bound generic variables, path-compressing as it goes, and
// returns the representative type. Every other algorithm in this file calls
// Prune before inspecting a type's shape. Grounded on
// original_source/bootstrap/typecheck.cpp's prune.
func Prune(t Type) Type {
	g, ok := t.(*Generic)
	if !ok || g.Instance == nil {
		return t
	}
	g.Instance = Prune(g.Instance)
	return g.Instance
}

// FinalType walks past bound generic variables the same way Prune does, but
// read-only: it never mutates an Instance field. Callers outside the
// unifier (member lookup, mangling, pretty-printing a type that must not be
// perturbed mid-inference) use FinalType; Prune is reserved for the
// algorithms in this file, which are allowed to path-compress as they go.
// Grounded on original_source/bootstrap/type.cpp's finalType.
func FinalType(t Type) Type {
	g, ok := t.(*Generic)
	if !ok || g.Instance == nil {
		return t
	}
	return FinalType(g.Instance)
}

// Occurs reports whether lhs (expected already pruned, a *Generic) appears
// free anywhere inside rhs. Used by Unify to reject infinite types such as
// 'a = 'a[].
func Occurs(lhs, rhs Type) bool {
	rhs = Prune(rhs)

	if lhs == rhs {
		return true
	}

	switch r := rhs.(type) {
	case *Array:
		return Occurs(lhs, r.Contained)
	case *Function:
		if Occurs(lhs, r.Result) {
			return true
		}
		for _, a := range r.Args {
			if Occurs(lhs, a) {
				return true
			}
		}
		return false
	case *Instance:
		for _, g := range r.Generics {
			if Occurs(lhs, g) {
				return true
			}
		}
		return false
	case *Tuple:
		for _, m := range r.Members {
			if Occurs(lhs, m) {
				return true
			}
		}
		return false
	}

	return false
}

func occursAny(lhs Type, rhs []Type) bool {
	for _, r := range rhs {
		if Occurs(lhs, r) {
			return true
		}
	}
	return false
}

// Fresh instantiates t, replacing every generic variable not free in nongen
// with a brand-new one (the same variable occurring twice in t gets the same
// replacement, tracked via genremap). This is let-polymorphism's
// generalize/instantiate step: nongen is the set of type variables bound by
// an enclosing, not-yet-generalized scope. Grounded on
// original_source/bootstrap/typecheck.cpp's fresh.
func Fresh(t Type, nongen []Type) Type {
	return fresh(t, nongen, map[*Generic]*Generic{})
}

func fresh(t Type, nongen []Type, genremap map[*Generic]*Generic) Type {
	t = Prune(t)

	switch v := t.(type) {
	case *Generic:
		if occursAny(v, nongen) {
			return v
		}
		if g, ok := genremap[v]; ok {
			return g
		}
		g := &Generic{}
		genremap[v] = g
		return g
	case *Array:
		return &Array{Contained: fresh(v.Contained, nongen, genremap)}
	case *Function:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = fresh(a, nongen, genremap)
		}
		return &Function{Result: fresh(v.Result, nongen, genremap), Args: args}
	case *Instance:
		generics := make([]Type, len(v.Generics))
		for i, g := range v.Generics {
			generics[i] = fresh(g, nongen, genremap)
		}
		return &Instance{Cell: v.Cell, Generics: generics}
	case *Tuple:
		members := make([]Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = fresh(m, nongen, genremap)
		}
		return &Tuple{Members: members}
	}

	return t
}

// Unify tries to make lhs and rhs the same type, binding unbound generic
// variables as needed, and reports whether it succeeded. A failed call may
// still have bound some variables on the way down (matching the C++
// original; internal/checker is expected to abandon the whole inference
// attempt on a unification failure rather than retry with partial bindings).
// Grounded on original_source/bootstrap/typecheck.cpp's unify.
func Unify(lhs, rhs Type) bool {
	if lhs == rhs {
		return true
	}

	lhs, rhs = Prune(lhs), Prune(rhs)

	if lhs == rhs {
		return true
	}

	if l, ok := lhs.(*Generic); ok {
		// A frozen generic is a declared (not inferred) type parameter: it may
		// only unify with itself, never get bound to something else. The
		// lhs == rhs fast path above already covers that case, so reaching
		// here with a frozen lhs is always a failure.
		if l.Frozen {
			return false
		}
		if Occurs(l, rhs) {
			return false
		}
		l.Instance = rhs
		return true
	}

	if _, ok := rhs.(*Generic); ok {
		return Unify(rhs, lhs)
	}

	switch l := lhs.(type) {
	case *Unit:
		_, ok := rhs.(*Unit)
		return ok
	case *Int:
		_, ok := rhs.(*Int)
		return ok
	case *Char:
		_, ok := rhs.(*Char)
		return ok
	case *Float:
		_, ok := rhs.(*Float)
		return ok
	case *Bool:
		_, ok := rhs.(*Bool)
		return ok
	case *Array:
		r, ok := rhs.(*Array)
		if !ok {
			return false
		}
		return Unify(l.Contained, r.Contained)
	case *Function:
		r, ok := rhs.(*Function)
		if !ok || len(l.Args) != len(r.Args) {
			return false
		}
		if !Unify(l.Result, r.Result) {
			return false
		}
		for i := range l.Args {
			if !Unify(l.Args[i], r.Args[i]) {
				return false
			}
		}
		return true
	case *Instance:
		r, ok := rhs.(*Instance)
		if !ok {
			return false
		}
		if l.Cell != r.Cell {
			return false
		}
		if len(l.Generics) != len(r.Generics) {
			return false
		}
		for i := range l.Generics {
			if !Unify(l.Generics[i], r.Generics[i]) {
				return false
			}
		}
		return true
	case *Tuple:
		r, ok := rhs.(*Tuple)
		if !ok || len(l.Members) != len(r.Members) {
			return false
		}
		for i := range l.Members {
			if !Unify(l.Members[i], r.Members[i]) {
				return false
			}
		}
		return true
	}

	return false
}
