package codec

import (
	"errors"

	"google.golang.org/protobuf/proto"

	"github.com/reoring/wirekit"
)

var errDurationRange = errors.New("duration exceeds the time.Duration range")

func malformed(m proto.Message, cause error) error {
	return &wirekit.Error{Code: wirekit.CodeMalformedPayload, Class: wirekit.TypeIDOf(m), Cause: cause}
}
