/*
Copyright © 2024 the kinrate authors.
This file is part of kinrate.

kinrate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

kinrate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with kinrate.  If not, see <http://www.gnu.org/licenses/>.
*/

package kinrate

import "gonum.org/v1/gonum/floats"

// MultiRate owns a dense, homogeneous batch of rates of one concrete
// variant R and evaluates all of them in one tight pass. Cantera's
// equivalent is a template class instantiated once per variant; a Go
// generic type parameterized the same way gives the same monomorphic,
// no-virtual-dispatch-per-rate property without any code duplication
// across the six variants.
//
// A MultiRate is not safe for concurrent mutation and evaluation; callers
// serialize Add/Replace/Update against Eval themselves.
type MultiRate[R Rate] struct {
	rates []R
	data  *SharedData
	buf   []float64
}

// NewMultiRate returns an empty evaluator for rates of type R.
func NewMultiRate[R Rate]() *MultiRate[R] {
	return &MultiRate[R]{}
}

// Add appends rate to the batch and returns its index.
func (m *MultiRate[R]) Add(rate R) int {
	m.rates = append(m.rates, rate)
	m.buf = append(m.buf, 0)
	return len(m.rates) - 1
}

// Replace overwrites the rate stored at index, used both directly by
// callers and internally by link propagation.
func (m *MultiRate[R]) Replace(index int, rate R) {
	m.rates[index] = rate
}

// Rate returns a copy of the rate stored at index.
func (m *MultiRate[R]) Rate(index int) R {
	return m.rates[index]
}

// Len returns the number of rates in the batch.
func (m *MultiRate[R]) Len() int {
	return len(m.rates)
}

// Update stores the shared per-evaluation data that subsequent Eval calls
// will use. The T- and P-derived quantities common to the whole batch are
// the ones NewSharedData already computed; Eval reads them from data and
// does not recompute them. Update itself does no further precomputation:
// per-rate intermediates such as Troe's Fcent or the logarithms of Plog's
// tabulated pressures are computed inside each rate's Eval.
func (m *MultiRate[R]) Update(data *SharedData) {
	m.data = data
}

// Eval writes k_i for every rate in index order into out, which must
// have at least Len() elements.
func (m *MultiRate[R]) Eval(out []float64) {
	for i, r := range m.rates {
		out[i] = r.Eval(m.data)
	}
}

// EvalScaled evaluates every rate in the batch and adds scale*k_i into
// out, which must already hold Len() partial results from other
// batches. This is the accumulate-into-a-combined-output idiom used when
// several MultiRates (one per variant) contribute rate coefficients into
// one reaction-indexed array.
func (m *MultiRate[R]) EvalScaled(out []float64, scale float64) {
	for i, r := range m.rates {
		m.buf[i] = r.Eval(m.data)
	}
	floats.AddScaled(out, scale, m.buf)
}
