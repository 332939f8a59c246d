package logging

import "time"

// Timed runs fn and logs its elapsed time under step. A failure is logged at
// error level and returned unchanged.
func Timed(step string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		Error().Err(err).Str("step", step).Dur("elapsed", elapsed).Msg("step failed")
		return err
	}
	Debug().Str("step", step).Dur("elapsed", elapsed).Msg("step done")

	return nil
}

// TimedValue is Timed for steps that produce a value.
func TimedValue[T any](step string, fn func() (T, error)) (T, error) {
	var out T
	err := Timed(step, func() error {
		var err error
		out, err = fn()
		return err
	})

	return out, err
}
