// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private elimination helpers.
//
// Purpose:
//   - Expose the in-place elimination kernel and the private-copy helper to
//     matrix_test ONLY, so forward elimination can be checked on augmented
//     input without going through back-substitution.
//
// Build Policy:
//   - The file name ends in _test.go, so it never ships in production builds.

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// Eliminate_TestOnly copies m and runs forward elimination on the copy.
// Returns the reduced copy or the raw (untagged) kernel error.
func Eliminate_TestOnly(m Matrix) (*Dense, error) {
	w, err := toDense(m, "Eliminate_TestOnly")
	if err != nil {
		return nil, err
	}
	if err = eliminate(w); err != nil {
		return nil, err
	}

	return w, nil
}

// ValidateNaNInf_TestOnly reports the numeric policy carried by d.
func ValidateNaNInf_TestOnly(d *Dense) bool { return d.validateNaNInf }
