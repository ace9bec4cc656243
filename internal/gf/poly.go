package gf

// Horner evaluates a polynomial at x using Horner's method. coeffs[0] is
// the highest-degree coefficient and coeffs[len-1] the constant term, so
// Horner(0, coeffs) returns the constant term.
func (f *Field) Horner(x int, coeffs []int) int {
	fx := 0
	for _, c := range coeffs {
		fx = f.Mul(fx, x) ^ c
	}
	return fx
}

// LagrangeAt interpolates the polynomial passing through the points
// (xs[i], ys[i]) and returns its value at the point at. The xs must be
// distinct. Products are accumulated in log space; a zero ys[i] or a
// vanishing numerator drops that term entirely.
func (f *Field) LagrangeAt(at int, xs, ys []int) int {
	sum := 0
	for i := range xs {
		if ys[i] == 0 {
			continue
		}

		prod := 0 // log of the running basis product
		skip := false
		for j := range xs {
			if i == j {
				continue
			}
			if at == xs[j] {
				// Numerator (at XOR xs[j]) is zero: the whole term vanishes.
				skip = true
				break
			}
			num := at ^ xs[j]
			den := xs[i] ^ xs[j]
			prod = (prod + f.logs[num] - f.logs[den] + f.Size - 1) % (f.Size - 1)
		}
		if skip {
			continue
		}

		sum ^= f.exps[(prod+f.logs[ys[i]])%(f.Size-1)]
	}
	return sum
}
