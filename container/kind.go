// Package container provides single-value wrappers with fixed capability
// tiers: Functor, Apply, Applicative, Monad and the deferred Lazy functor.
//
// Every transformation returns a new container; none mutates its own or
// another container's stored value. Same-type operations are methods,
// operations that change the wrapped type are package functions
// (MapFunctor, MonadAp, ChainMonad, LazyMap, ...).
package container

import "slices"

// Capability names one operation a container variant supports.
type Capability string

// Capabilities.
const (
	CapMap      Capability = "map"
	CapFold     Capability = "fold"
	CapGet      Capability = "get"
	CapTap      Capability = "tap"
	CapAp       Capability = "ap"
	CapApGet    Capability = "apGet"
	CapApChain  Capability = "apChain"
	CapChain    Capability = "chain"
	CapJoin     Capability = "join"
	CapLazyMap  Capability = "lazyMap"
	CapLazyFold Capability = "lazyFold"
	CapString   Capability = "toString"
	CapInspect  Capability = "inspect"
)

// Kind identifies a container variant.
type Kind int

// Variants.
const (
	KindFunctor Kind = iota
	KindApply
	KindApplicative
	KindMonad
	KindLazyFunctor
)

var (
	functorCaps = []Capability{CapMap, CapString, CapInspect, CapTap, CapFold, CapGet}
	applyCaps   = append(slices.Clone(functorCaps), CapAp, CapApGet)
	monadCaps   = append(slices.Clone(applyCaps), CapApChain, CapChain, CapJoin)
	lazyCaps    = []Capability{CapLazyMap, CapLazyFold}
)

// String returns the variant name used when rendering containers.
func (k Kind) String() string {
	switch k {
	case KindFunctor:
		return "Functor"
	case KindApply:
		return "Apply"
	case KindApplicative:
		return "Applicative"
	case KindMonad:
		return "Monad"
	case KindLazyFunctor:
		return "LazyFunctor"
	default:
		return "Unknown"
	}
}

// Capabilities returns a copy of the variant's capability set.
func (k Kind) Capabilities() []Capability {
	switch k {
	case KindFunctor:
		return slices.Clone(functorCaps)
	case KindApply, KindApplicative:
		return slices.Clone(applyCaps)
	case KindMonad:
		return slices.Clone(monadCaps)
	case KindLazyFunctor:
		return slices.Clone(lazyCaps)
	default:
		return nil
	}
}

// Has reports whether the variant supports c.
func (k Kind) Has(c Capability) bool {
	return slices.Contains(k.Capabilities(), c)
}
