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

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/spatialmodel/kinrate/node"
	"github.com/spatialmodel/kinrate/unit"
)

// ChebyshevRate is log10(k) expanded bivariately in Chebyshev polynomials
// of a reduced temperature and reduced log-pressure, over a rectangular
// (Tmin,Tmax) x (Pmin,Pmax) domain. The coefficient matrix is a
// *mat.Dense rather than a slice-of-slices so that it carries the same
// dense-matrix identity other matrix-shaped quantities in this codebase
// do, and because Clenshaw evaluation wants contiguous rows.
type ChebyshevRate struct {
	Tmin, Tmax, Pmin, Pmax float64
	coeffs                 *mat.Dense
	link                   link[ChebyshevRate]
}

// NewChebyshevRate returns a default-constructed ChebyshevRate with NaN
// domain bounds and no coefficient matrix, pending SetParameters.
func NewChebyshevRate() *ChebyshevRate {
	return &ChebyshevRate{Tmin: math.NaN(), Tmax: math.NaN(), Pmin: math.NaN(), Pmax: math.NaN()}
}

// SetParameters configures r from "temperature-range": [Tmin,Tmax],
// "pressure-range": [Pmin,Pmax] (both in SI units, Pa for pressure), and
// "data": the nT x nP coefficient matrix. The (0,0) coefficient is
// adjusted by log10(factor) so that the stored matrix always produces k
// in SI rate units regardless of what rate units the document's A would
// have been configured in, matching the way ArrheniusRate folds its
// configured-units factor into A itself at ingest.
func (r *ChebyshevRate) SetParameters(n node.Node, rateUnits unit.RateUnits) error {
	if !n.Has("data") {
		logUnsetFallback("Chebyshev", "data")
		r.Tmin, r.Tmax, r.Pmin, r.Pmax = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		r.coeffs = nil
		return nil
	}
	trange, err := n.FloatSlice("temperature-range")
	if err != nil {
		return err
	}
	if len(trange) != 2 {
		return invalidParameter("", "temperature-range must have exactly two entries")
	}
	prange, err := n.FloatSlice("pressure-range")
	if err != nil {
		return err
	}
	if len(prange) != 2 {
		return invalidParameter("", "pressure-range must have exactly two entries")
	}
	rows, err := n.FloatMatrix("data")
	if err != nil {
		return err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return invalidParameter("", "Chebyshev data matrix must not be empty")
	}
	nT, nP := len(rows), len(rows[0])
	flat := make([]float64, 0, nT*nP)
	for _, row := range rows {
		if len(row) != nP {
			return invalidParameter("", "Chebyshev data rows must all have the same length")
		}
		flat = append(flat, row...)
	}
	factor, err := rateUnits.Factor()
	if err != nil {
		return err
	}
	flat[0] += math.Log10(factor)
	r.Tmin, r.Tmax = trange[0], trange[1]
	r.Pmin, r.Pmax = prange[0], prange[1]
	r.coeffs = mat.NewDense(nT, nP, flat)
	return nil
}

// GetParameters serializes r back to a node, undoing the unit rescale
// applied at configure time.
func (r *ChebyshevRate) GetParameters(rateUnits unit.RateUnits) (node.Node, error) {
	if r.coeffs == nil {
		return node.Node{}, nil
	}
	factor, err := rateUnits.Factor()
	if err != nil {
		return nil, err
	}
	nT, nP := r.coeffs.Dims()
	rows := make([]interface{}, nT)
	for i := 0; i < nT; i++ {
		row := make([]float64, nP)
		copy(row, r.coeffs.RawRowView(i))
		if i == 0 {
			row[0] -= math.Log10(factor)
		}
		rowIface := make([]interface{}, nP)
		for j, v := range row {
			rowIface[j] = v
		}
		rows[i] = rowIface
	}
	return node.Node{
		"temperature-range": []interface{}{r.Tmin, r.Tmax},
		"pressure-range":    []interface{}{r.Pmin, r.Pmax},
		"data":              rows,
	}, nil
}

// Validate fails with InvalidParameter if a configured domain is
// degenerate (min not strictly less than max).
func (r ChebyshevRate) Validate(equation string) error {
	if r.coeffs == nil {
		return nil
	}
	if !(r.Tmin < r.Tmax) {
		return invalidParameter(equation, "Chebyshev temperature-range must be strictly increasing")
	}
	if !(r.Pmin < r.Pmax) {
		return invalidParameter(equation, "Chebyshev pressure-range must be strictly increasing")
	}
	return nil
}

// clenshaw evaluates Σ coeffs[i]·T_i(x) by the Clenshaw recurrence,
// without materializing any individual Chebyshev polynomial value.
func clenshaw(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return coeffs[0]
	}
	bkp1, bkp2 := 0.0, 0.0
	for k := n - 1; k >= 1; k-- {
		bk := 2*x*bkp1 - bkp2 + coeffs[k]
		bkp2 = bkp1
		bkp1 = bk
	}
	return x*bkp1 - bkp2 + coeffs[0]
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Eval returns 10^(Σ C_ij T_i(T̃) T_j(P̃)), or NaN if r has not been
// configured. Arguments outside the tabulated domain are clamped in
// reduced-coordinate space rather than rejected.
func (r ChebyshevRate) Eval(sd *SharedData) float64 {
	if r.coeffs == nil {
		return math.NaN()
	}
	invTmin, invTmax := 1/r.Tmin, 1/r.Tmax
	Ttilde := clamp((2*sd.RecipT-invTmin-invTmax)/(invTmax-invTmin), -1, 1)
	logPmin, logPmax := math.Log(r.Pmin), math.Log(r.Pmax)
	Ptilde := clamp((2*sd.LogP-logPmin-logPmax)/(logPmax-logPmin), -1, 1)

	// Clenshaw recurrence over the temperature index, evaluating each
	// row's pressure series as it is reached so that no per-call slice is
	// allocated.
	nT, _ := r.coeffs.Dims()
	bkp1, bkp2 := 0.0, 0.0
	for k := nT - 1; k >= 1; k-- {
		bk := 2*Ttilde*bkp1 - bkp2 + clenshaw(r.coeffs.RawRowView(k), Ptilde)
		bkp2 = bkp1
		bkp1 = bk
	}
	log10k := Ttilde*bkp1 - bkp2 + clenshaw(r.coeffs.RawRowView(0), Ptilde)
	return math.Pow(10, log10k)
}

// LinkEvaluator attaches r to eval at the given index.
func (r *ChebyshevRate) LinkEvaluator(index int, eval *MultiRate[ChebyshevRate]) {
	r.link.set(index, eval)
}

// ReleaseEvaluator detaches r from its evaluator, idempotently.
func (r *ChebyshevRate) ReleaseEvaluator() {
	r.link.release()
}

// Index returns r's index in its evaluator, or an InvalidState error if
// r is not linked.
func (r *ChebyshevRate) Index() (int, error) {
	return r.link.index()
}

// SetCoeffs replaces the domain bounds and coefficient matrix (already
// in SI rate units, i.e. with any unit rescale already folded into
// coeffs' (0,0) entry) and forwards the change when linked.
func (r *ChebyshevRate) SetCoeffs(Tmin, Tmax, Pmin, Pmax float64, coeffs *mat.Dense) {
	r.Tmin, r.Tmax, r.Pmin, r.Pmax = Tmin, Tmax, Pmin, Pmax
	r.coeffs = coeffs
	forward(&r.link, func(cp *ChebyshevRate) { cp.SetCoeffs(Tmin, Tmax, Pmin, Pmax, coeffs) })
}
