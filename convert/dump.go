package convert

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/arloliu/ffaconv/ffa"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

// DumpLayout writes a readable dump of the layout of output to w.
func DumpLayout(w io.Writer, output string, layout ffa.Layout) {
	fmt.Fprintf(w, "layout of %s:\n%s", output, spewConfig.Sdump(layout))
}
