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

import "github.com/sirupsen/logrus"

// Log is the structured logger configuration-time diagnostics are
// written to. It defaults to logrus's standard logger and may be
// replaced by a caller that wants rate-configuration diagnostics routed
// elsewhere.
var Log logrus.FieldLogger = logrus.StandardLogger()

// logUnsetFallback reports that a rate was left unset because its
// parameter node omitted the given key, rather than erroring. Called
// only from SetParameters, never from Eval.
func logUnsetFallback(variant, key string) {
	Log.WithFields(logrus.Fields{
		"variant": variant,
		"key":     key,
	}).Debug("kinrate: rate left unset, parameter key absent")
}
