package encode

import (
	"bytes"
	"strings"

	"github.com/stablejson/go-stablejson/value"
)

func MustString(node *value.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
