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
	"sort"

	"github.com/spatialmodel/kinrate/node"
	"github.com/spatialmodel/kinrate/unit"
)

type plogEntry struct {
	P   float64
	arr Arrhenius
}

// PlogRate interpolates log-linearly in pressure between Arrhenius
// expressions tabulated at a set of pressures.
type PlogRate struct {
	entries    []plogEntry // sorted ascending by P; duplicates allowed
	uniqueP    []float64   // distinct pressures, ascending
	groupStart []int       // entries[groupStart[i]:groupStart[i+1]] share uniqueP[i]
	link       link[PlogRate]
}

// NewPlogRate returns a default-constructed PlogRate with no tabulated
// pressures, pending SetParameters.
func NewPlogRate() *PlogRate {
	return &PlogRate{}
}

// SetParameters configures r from "rate-constants", a list of
// {P, A, b, Ea} records. Pressures need not arrive sorted; they are
// sorted here, which is what makes the stored invariant ("Plog pressures
// are stored non-decreasing") hold regardless of input order. An absent
// "rate-constants" key leaves r with no entries rather than erroring.
func (r *PlogRate) SetParameters(n node.Node, rateUnits unit.RateUnits) error {
	if !n.Has("rate-constants") {
		logUnsetFallback("Plog", "rate-constants")
		r.entries = nil
		r.rebuildGroups()
		return nil
	}
	records, err := n.MapSlice("rate-constants")
	if err != nil {
		return err
	}
	ctx := n.Units()
	entries := make([]plogEntry, len(records))
	for i, rec := range records {
		Pval, Punit, err := rec.Quantity("P")
		if err != nil {
			return err
		}
		P, err := unit.PressureToSI(Pval, Punit)
		if err != nil {
			return err
		}
		arr, err := arrheniusFromNode(rec, ctx, rateUnits)
		if err != nil {
			return err
		}
		entries[i] = plogEntry{P: P, arr: arr}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].P < entries[j].P })
	r.entries = entries
	r.rebuildGroups()
	return nil
}

func (r *PlogRate) rebuildGroups() {
	r.uniqueP = nil
	r.groupStart = nil
	for i, e := range r.entries {
		if i == 0 || e.P != r.entries[i-1].P {
			r.uniqueP = append(r.uniqueP, e.P)
			r.groupStart = append(r.groupStart, i)
		}
	}
	r.groupStart = append(r.groupStart, len(r.entries))
}

// GetParameters serializes r back to a node.
func (r *PlogRate) GetParameters(rateUnits unit.RateUnits) (node.Node, error) {
	if len(r.entries) == 0 {
		return node.Node{}, nil
	}
	recs := make([]interface{}, len(r.entries))
	for i, e := range r.entries {
		sub, err := e.arr.toNode(node.Context{}, rateUnits)
		if err != nil {
			return nil, err
		}
		sub["P"] = e.P
		recs[i] = sub
	}
	return node.Node{"rate-constants": recs}, nil
}

// Validate fails with InvalidParameter if no pressures have been
// tabulated.
func (r PlogRate) Validate(equation string) error {
	if len(r.uniqueP) == 0 {
		return invalidParameter(equation, "at least one Plog rate-constant entry is required")
	}
	return nil
}

// groupK returns the summed linear k of every entry sharing uniqueP[i].
func (r *PlogRate) groupK(sd *SharedData, i int) float64 {
	var k float64
	for _, e := range r.entries[r.groupStart[i]:r.groupStart[i+1]] {
		k += e.arr.Eval(sd)
	}
	return k
}

// Eval interpolates log-linearly in pressure between the two tabulated
// pressures bracketing sd.P, clamping to the nearest tabulated pressure
// outside the table's range. Entries sharing a tabulated pressure are
// summed (in linear k, not log k) before interpolation.
func (r PlogRate) Eval(sd *SharedData) float64 {
	n := len(r.uniqueP)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 || sd.P <= r.uniqueP[0] {
		return r.groupK(sd, 0)
	}
	if sd.P >= r.uniqueP[n-1] {
		return r.groupK(sd, n-1)
	}
	// Find i such that uniqueP[i] <= P < uniqueP[i+1].
	i := sort.Search(n, func(i int) bool { return r.uniqueP[i] > sd.P }) - 1
	logP0, logP1 := math.Log(r.uniqueP[i]), math.Log(r.uniqueP[i+1])
	logK0, logK1 := math.Log(r.groupK(sd, i)), math.Log(r.groupK(sd, i+1))
	frac := (sd.LogP - logP0) / (logP1 - logP0)
	return math.Exp(logK0 + (logK1-logK0)*frac)
}

// LinkEvaluator attaches r to eval at the given index.
func (r *PlogRate) LinkEvaluator(index int, eval *MultiRate[PlogRate]) {
	r.link.set(index, eval)
}

// ReleaseEvaluator detaches r from its evaluator, idempotently.
func (r *PlogRate) ReleaseEvaluator() {
	r.link.release()
}

// Index returns r's index in its evaluator, or an InvalidState error if
// r is not linked.
func (r *PlogRate) Index() (int, error) {
	return r.link.index()
}

// SetRates replaces the tabulated (pressure, Arrhenius) pairs and
// forwards the change when linked. Pressures are given in Pa and sorted
// here as SetParameters does.
func (r *PlogRate) SetRates(pressures []float64, rates []Arrhenius) {
	entries := make([]plogEntry, len(pressures))
	for i := range pressures {
		entries[i] = plogEntry{P: pressures[i], arr: rates[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].P < entries[j].P })
	r.entries = entries
	r.rebuildGroups()
	forward(&r.link, func(cp *PlogRate) { cp.SetRates(pressures, rates) })
}
