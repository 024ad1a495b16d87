package advanced

import "github.com/pkg/errors"

// Precondition violations (clockwise triangles handed to a predicate that
// assumes counterclockwise ones) are only detected in debug builds, where we
// panic. The public API recovers to convert to an error.

type PredicateError error

// Panic with a PredicateError.
func fatalf(format string, args ...interface{}) {
	panic(PredicateError(errors.Errorf(format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if predicateError, ok := r.(PredicateError); ok {
			return predicateError
		}
		panic(r)
	}
	return nil
}

func checkCCW(op string, c0, c1, c2 Point) {
	if IsCW(Triangle{c0, c1, c2}) {
		fatalf("%s: triangle is clockwise: %v", op, Triangle{c0, c1, c2})
	}
}
