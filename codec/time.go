package codec

import (
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/reoring/wirekit"
)

// Timestamp returns a rule converting google.protobuf.Timestamp <-> time.Time.
// Decoded times are in UTC, so round trips compare equal with time.Time.Equal
// rather than ==.
func Timestamp() wirekit.Rule {
	return wirekit.NewRule(
		func(_ wirekit.Converter, w *timestamppb.Timestamp) (time.Time, error) {
			if err := w.CheckValid(); err != nil {
				return time.Time{}, malformed(w, err)
			}
			return w.AsTime(), nil
		},
		func(_ wirekit.Converter, t time.Time) (*timestamppb.Timestamp, error) {
			w := timestamppb.New(t)
			if err := w.CheckValid(); err != nil {
				return nil, &wirekit.Error{Code: wirekit.CodeInvalidInputClass, Class: "time.Time", Message: "outside the timestamp range", Cause: err}
			}
			return w, nil
		},
	)
}

// Duration returns a rule converting google.protobuf.Duration <-> time.Duration.
// Wire durations beyond the time.Duration range fail instead of saturating.
func Duration() wirekit.Rule {
	return wirekit.NewRule(
		func(_ wirekit.Converter, w *durationpb.Duration) (time.Duration, error) {
			if err := w.CheckValid(); err != nil {
				return 0, malformed(w, err)
			}
			d := w.AsDuration()
			if durationpb.New(d).GetSeconds() != w.GetSeconds() {
				return 0, malformed(w, errDurationRange)
			}
			return d, nil
		},
		func(_ wirekit.Converter, d time.Duration) (*durationpb.Duration, error) {
			return durationpb.New(d), nil
		},
	)
}
