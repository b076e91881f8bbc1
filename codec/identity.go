package codec

import (
	"google.golang.org/protobuf/proto"

	"github.com/reoring/wirekit"
)

// Identity returns a rule that uses the wire message M unchanged as its own
// domain value. Boxing and unboxing an M then behaves like any domain type,
// and the rule makes M's nested schemas discoverable.
func Identity[M proto.Message]() wirekit.Rule {
	return wirekit.NewLeafRule(identity[M], identity[M])
}

func identity[M proto.Message](m M) M { return m }
