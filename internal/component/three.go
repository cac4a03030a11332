package component

// SubClass extends MyClass with a third integer.
// Base is a named field rather than embedded so MyClass.Sum is not promoted.
type SubClass struct {
	Base MyClass `yaml:"base"`
	Z    int32   `yaml:"z"`
}

// NewSubClass returns a SubClass whose base holds x and y.
func NewSubClass(x, y, z int32) SubClass {
	return SubClass{Base: NewMyClass(x, y), Z: z}
}

// X returns the base x.
func (s SubClass) X() int32 { return s.Base.X }

// Y returns the base y.
func (s SubClass) Y() int32 { return s.Base.Y }

// Sum returns X + Y + Z. Overflow wraps.
func (s SubClass) Sum() int32 {
	return s.Base.Sum() + s.Z
}
